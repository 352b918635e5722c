package session

import "fmt"

// Journal receives one line per session operation. *logbook.Logbook satisfies it.
type Journal interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// WithJournal writes every session event to j.
func WithJournal(j Journal) Option {
	if j == nil {
		return func(*Session) {}
	}
	return WithObserver(func(ev Event) { writeEvent(j, ev) })
}

func writeEvent(j Journal, ev Event) {
	position := historyPosition(ev)
	switch ev.Kind {
	case EventAdd:
		j.Info("Added %q at %d · %d task(s) · history %s", ev.Task.Description(), ev.Index, ev.Size, position)
	case EventRemove:
		j.Info("Removed %q from %d · %d task(s) · history %s", ev.Task.Description(), ev.Index, ev.Size, position)
	case EventUndo, EventRedo:
		if !ev.Moved {
			j.Warn("Nothing to %s · history %s", ev.Kind, position)
			return
		}
		j.Info("%s · %d task(s) · history %s", titleKind(ev.Kind), ev.Size, position)
	}
}

func historyPosition(ev Event) string {
	return fmt.Sprintf("%d/%d", ev.Cursor+1, ev.Total)
}

func titleKind(k EventKind) string {
	switch k {
	case EventUndo:
		return "Undo"
	case EventRedo:
		return "Redo"
	}
	return string(k)
}
