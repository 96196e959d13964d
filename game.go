package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/slimes/assets"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/ecs/entity"
	"github.com/milk9111/slimes/ecs/system"
	"github.com/milk9111/slimes/levels"
	"github.com/milk9111/slimes/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x1d, G: 0x2b, B: 0x35, A: 0xff}

type Options struct {
	Level string
	Debug bool
	Demo  bool
	Seed  uint64
}

type scene int

const (
	sceneMenu scene = iota
	sceneLevel
)

type Game struct {
	opts   Options
	tuning prefabs.GameTuning

	bank    system.SoundBank
	music   *system.MusicSystem
	enemyAI *system.EnemyAISystem
	watcher *prefabs.Watcher

	scene     scene
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	physics   *system.PhysicsSystem
	refs      entity.LevelRefs
	harness   *system.DemoHarness

	fonts *uiFonts
	hud   *HUD
	menu  *Menu
	quit  bool
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadGameTuning()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:    opts,
		tuning:  tuning,
		enemyAI: system.NewEnemyAISystem(),
		render:  system.NewRenderSystem(),
		fonts:   fonts,
	}

	var loader system.TrackLoader
	if bank, err := assets.NewSoundBank(assets.Context()); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		g.bank = bank
		loader = bank
	}
	g.music = system.NewMusicSystem(loader)

	if opts.Debug {
		watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.menu = NewMenu(g.fonts, g.startLevel, func() { g.quit = true })
	g.scene = sceneMenu
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) startLevel() {
	if err := g.loadLevel(); err != nil {
		log.Printf("load level %q: %v", g.opts.Level, err)
		g.showMenu()
	}
}

func (g *Game) loadLevel() error {
	g.music.StopAll()

	lvl, err := levels.LoadLevel(levelFile(g.opts.Level))
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	physics := system.NewPhysicsSystem()
	physics.SetGravity(g.tuning.Gravity)

	refs, err := entity.LoadLevelToWorld(world, lvl, g.tuning)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if g.opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(g.opts.Seed, g.opts.Seed^0x9e3779b97f4a7c15))
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewChronometerSystem(),
		system.NewPlayerControllerSystem(),
		g.enemyAI,
		physics,
		system.NewSpawnerSystem(physics, entity.SpawnEnemy, rng),
		system.NewPickupCollectSystem(),
		system.NewSoftlockSystem(),
		system.NewGameOverSystem(),
		system.NewRotatorSystem(),
		system.NewPickupHoverSystem(),
		system.NewCameraSystem(),
		system.NewAnimationSystem(),
		system.NewWhiteFlashSystem(),
		system.NewAudioSystem(g.bank),
		g.music,
	)
	g.world = world
	g.physics = physics
	g.refs = refs
	g.harness = nil
	if g.opts.Demo {
		g.harness = system.NewDemoHarness(refs.Player, refs.Camera)
	}
	g.hud = NewHUD(g.fonts, g.hudActions())
	g.scene = sceneLevel
	return nil
}

func (g *Game) showMenu() {
	g.music.StopAll()
	g.world = nil
	g.physics = nil
	g.scheduler = nil
	g.hud = nil
	g.scene = sceneMenu
}

func (g *Game) hudActions() HUDActions {
	actions := HUDActions{
		Restart:  func() { system.RequestScene(g.world, component.SceneReload) },
		MainMenu: func() { system.RequestScene(g.world, component.SceneMainMenu) },
		Copy:     func() { copyResult(g.world) },
	}
	if g.harness != nil {
		actions.Demo = func(state component.SlimeAnimationState, damageType int) {
			g.harness.ChangeStateTo(g.world, state, damageType)
		}
	}
	return actions
}

func (g *Game) Update() error {
	g.drainReloads()

	switch g.scene {
	case sceneMenu:
		g.menu.Update()
	case sceneLevel:
		system.AdvanceClock(g.world, common.FrameTime)
		g.scheduler.Update(g.world)
		g.hud.Update(g.world)
		if kind, ok := system.ConsumeSceneRequest(g.world); ok {
			switch kind {
			case component.SceneReload:
				g.startLevel()
			case component.SceneMainMenu:
				g.showMenu()
			}
		}
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Drain() {
		if change.Err != nil {
			log.Printf("hot reload: %v", change.Err)
			continue
		}
		switch change.Kind {
		case prefabs.ChangeScript:
			log.Printf("hot reload: %s", change.Name)
			g.enemyAI.Reload()
		case prefabs.ChangeTuning:
			tuning, err := prefabs.LoadGameTuning()
			if err != nil {
				log.Printf("hot reload: %v", err)
				continue
			}
			g.tuning = tuning
			log.Printf("hot reload: %s (applies on restart)", change.Name)
		default:
			log.Printf("hot reload: %s %s (applies on restart)", change.Kind, change.Name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.scene {
	case sceneMenu:
		g.menu.Draw(screen)
	case sceneLevel:
		g.render.Draw(g.world, screen)
		if g.opts.Debug {
			system.DrawPhysicsDebug(g.physics, g.world, screen)
			system.DrawPlayerDebug(g.world, screen)
		}
		g.hud.Draw(screen)
	}

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func levelFile(name string) string {
	if name == "" {
		name = "level1"
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}
