package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind says what a changed file feeds.
type ChangeKind uint8

const (
	ChangeIgnored ChangeKind = iota
	ChangeTuning
	ChangePrefab
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTuning:
		return "tuning"
	case ChangePrefab:
		return "prefab"
	case ChangeScript:
		return "script"
	default:
		return "ignored"
	}
}

// Change is one hot-reload notification. Err is set when the underlying
// watcher failed; Name and Kind are empty then.
type Change struct {
	Name string
	Kind ChangeKind
	Err  error
}

// ClassifyChange maps a file path to what it reloads.
func ClassifyChange(path string) ChangeKind {
	base := strings.ToLower(filepath.Base(path))
	switch filepath.Ext(base) {
	case ".tengo":
		return ChangeScript
	case ".yaml", ".yml":
		if strings.TrimSuffix(base, filepath.Ext(base)) == "game" {
			return ChangeTuning
		}
		return ChangePrefab
	}
	return ChangeIgnored
}

const reloadSettle = 100 * time.Millisecond

// Watcher collects prefab, tuning and script edits in the background for
// the frame loop to pick up with Drain.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 32),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Drain returns the changes seen since the last call without blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) loop() {
	// editors often write a file several times in a row
	recent := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			kind := ClassifyChange(ev.Name)
			if kind == ChangeIgnored {
				continue
			}
			now := time.Now()
			if at, seen := recent[ev.Name]; seen && now.Sub(at) < reloadSettle {
				continue
			}
			recent[ev.Name] = now
			w.send(Change{Name: ev.Name, Kind: kind})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(Change{Err: err})
		case <-w.done:
			return
		}
	}
}

// send drops the change when the frame loop has fallen behind.
func (w *Watcher) send(c Change) {
	select {
	case w.changes <- c:
	case <-w.done:
	default:
	}
}
