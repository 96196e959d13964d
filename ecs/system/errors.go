package system

import "errors"

var errNoTrackLoader = errors.New("music: no track loader")
