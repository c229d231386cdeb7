package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusManager_ShowAndExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sm := NewStatusManager()
	sm.now = func() time.Time { return now }

	cmd := sm.ShowSuccess("Saved: %s", "notes")
	assert.NotNil(t, cmd)

	msg, typ, ok := sm.GetStatus()
	assert.True(t, ok)
	assert.Equal(t, "✓ Saved: notes", msg)
	assert.Equal(t, StatusTypeSuccess, typ)

	now = now.Add(3 * time.Second)
	_, _, ok = sm.GetStatus()
	assert.False(t, ok, "status should expire after the default duration")
	assert.Nil(t, sm.CurrentStatus)
}

func TestStatusManager_PersistentFallback(t *testing.T) {
	sm := NewStatusManager()
	sm.SetPersistentMessage("Unsaved changes", StatusTypeWarning)

	msg, typ, ok := sm.GetStatus()
	assert.True(t, ok)
	assert.Equal(t, "⚠ Unsaved changes", msg)
	assert.Equal(t, StatusTypeWarning, typ)

	sm.ShowError("boom")
	msg, _, _ = sm.GetStatus()
	assert.Equal(t, "× boom", msg, "temporary status wins over persistent")

	sm.Clear()
	sm.ClearPersistentMessage()
	_, _, ok = sm.GetStatus()
	assert.False(t, ok)
}

func TestStatusType_Icon(t *testing.T) {
	tests := []struct {
		typ  StatusType
		want string
	}{
		{StatusTypeSuccess, "✓"},
		{StatusTypeWarning, "⚠"},
		{StatusTypeError, "×"},
		{StatusTypeInfo, "ℹ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.icon())
	}
}
