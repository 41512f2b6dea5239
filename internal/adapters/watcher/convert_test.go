package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/helmvals/internal/core/ports"
)

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name   string
		op     fsnotify.Op
		wantOp ports.WatchOp
		wantOK bool
	}{
		{name: "write", op: fsnotify.Write, wantOp: ports.OpWrite, wantOK: true},
		{name: "create", op: fsnotify.Create, wantOp: ports.OpCreate, wantOK: true},
		{name: "remove", op: fsnotify.Remove, wantOp: ports.OpRemove, wantOK: true},
		{name: "rename", op: fsnotify.Rename, wantOp: ports.OpRename, wantOK: true},
		{name: "write wins over chmod", op: fsnotify.Write | fsnotify.Chmod, wantOp: ports.OpWrite, wantOK: true},
		{name: "chmod only", op: fsnotify.Chmod, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := convertEvent(fsnotify.Event{Name: "/chart/./values.yaml", Op: tt.op})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, ports.WatchEvent{Path: "/chart/values.yaml", Operation: tt.wantOp}, event)
			}
		})
	}
}
