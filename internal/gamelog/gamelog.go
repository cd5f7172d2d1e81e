// Package gamelog records game events as JSON lines, one event per
// line, so a finished game can be replayed or analyzed offline.
package gamelog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/jeanmidevacc/scoundrel/engine"
)

// Event types emitted by the runner.
const (
	EventGameStarted  = "game_started"
	EventRoomDrawn    = "room_drawn"
	EventRoomAvoided  = "room_avoided"
	EventCardFaced    = "card_faced"
	EventCombat       = "combat"
	EventTurnComplete = "turn_complete"
	EventGameOver     = "game_over"
)

// Logger writes structured game events. A nil Logger is valid and
// drops everything, so callers never need to guard their calls.
type Logger struct {
	file    *os.File
	json    *logrus.Logger
	console *logrus.Logger
}

// New opens a logger. path is the JSONL output file, created along
// with its parent directories; an empty path disables file output.
// console additionally echoes events as text on stdout.
func New(path string, console bool) (*Logger, error) {
	l := &Logger{}

	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f

		jl := logrus.New()
		jl.SetOutput(f)
		jl.SetFormatter(&logrus.JSONFormatter{})
		l.json = jl
	}

	if console {
		cl := logrus.New()
		cl.SetOutput(os.Stdout)
		cl.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.console = cl
	}

	return l, nil
}

// Event logs one game event with its payload fields.
func (l *Logger) Event(event string, data logrus.Fields) {
	l.log(event, data, nil)
}

// EventWithState logs one game event plus a full state snapshot.
func (l *Logger) EventWithState(event string, data logrus.Fields, snap engine.Snapshot) {
	l.log(event, data, &snap)
}

func (l *Logger) log(event string, data logrus.Fields, snap *engine.Snapshot) {
	if l == nil {
		return
	}
	fields := logrus.Fields{"event": event}
	if len(data) > 0 {
		fields["data"] = map[string]interface{}(data)
	}
	if snap != nil {
		fields["state"] = snap
	}
	if l.json != nil {
		l.json.WithFields(fields).Info(event)
	}
	if l.console != nil {
		l.console.WithFields(fields).Info(event)
	}
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
