package repl

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/novarc-lang/novarc/log"
)

func TestExecuteCommand_UnknownEchoesInput(t *testing.T) {
	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))
	m := newModel(t.Context(), history, 0, log.Logger{})

	_, cmd := m.executeCommand(":nope")
	if cmd == nil {
		t.Fatal("expected a command")
	}

	// The unknown-command branch sequences the input echo before the
	// error line, like every other command branch.
	v := reflect.ValueOf(cmd())
	if v.Kind() != reflect.Slice {
		t.Fatalf("expected a command sequence, got %v", v.Kind())
	}

	if v.Len() != 2 {
		t.Errorf("expected echo and error commands, got %d", v.Len())
	}
}

func TestExecuteCommand_QuitSetsQuitting(t *testing.T) {
	history := NewHistory(filepath.Join(t.TempDir(), baseHistory))
	m := newModel(t.Context(), history, 0, log.Logger{})

	next, cmd := m.executeCommand(":quit")
	if !next.quitting {
		t.Error("expected quitting to be set")
	}

	if cmd == nil {
		t.Error("expected a command")
	}
}
