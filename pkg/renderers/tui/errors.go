package tui

import "errors"

// ErrAborted is returned when the user interrupts a prompt (Ctrl+C).
var ErrAborted = errors.New("tui: aborted")
