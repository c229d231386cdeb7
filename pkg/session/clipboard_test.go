package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/quill/pkg/selection"
)

type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
	block    chan struct{}
	written  []string
}

func (f *fakeClipboard) ReadText() (string, error) {
	if f.block != nil {
		<-f.block
	}
	return f.text, f.readErr
}

func (f *fakeClipboard) WriteText(s string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, s)
	return nil
}

func TestSession_PasteReplacesSelection(t *testing.T) {
	cb := &fakeClipboard{text: "big"}
	s := New("a small cat", WithClipboard(cb))
	s.Select(selection.Range{Start: 2, End: 7})

	req := s.RequestPaste(context.Background())
	require.NoError(t, s.CompletePaste(req()))

	assert.Equal(t, "a big cat", s.Text())
	assert.Equal(t, selection.Caret(5), s.Selection())

	require.NoError(t, s.Undo())
	assert.Equal(t, "a small cat", s.Text())
}

func TestSession_PasteFailureLeavesStateUnchanged(t *testing.T) {
	cb := &fakeClipboard{readErr: errors.New("permission denied")}
	s := New("keep", WithClipboard(cb))

	err := s.Paste(context.Background())
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, "keep", s.Text())
	assert.False(t, s.HistoryState().CanUndo)
}

func TestSession_PasteEmptyClipboardIsNoop(t *testing.T) {
	s := New("keep", WithClipboard(&fakeClipboard{}))
	require.NoError(t, s.Paste(context.Background()))
	assert.False(t, s.HistoryState().CanUndo)
}

func TestSession_PasteTimeout(t *testing.T) {
	cb := &fakeClipboard{text: "late", block: make(chan struct{})}
	defer close(cb.block)
	s := New("keep", WithClipboard(cb))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Paste(ctx)
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "keep", s.Text())
}

func TestSession_EditsWhilePastePending(t *testing.T) {
	cb := &fakeClipboard{text: "!"}
	s := New("hi", WithClipboard(cb))
	req := s.RequestPaste(context.Background())

	s.Edit("hi there", 8)
	require.NoError(t, s.CompletePaste(req()))

	assert.Equal(t, "hi there!", s.Text())
}

func TestSession_Copy(t *testing.T) {
	cb := &fakeClipboard{}
	s := New("**b** rest", WithClipboard(cb))

	assert.ErrorIs(t, s.Copy(CopySelection), ErrEmptySelection)

	s.Select(selection.Range{Start: 6, End: 10})
	require.NoError(t, s.Copy(CopySelection))
	require.NoError(t, s.Copy(CopyText))
	require.NoError(t, s.Copy(CopyHTML))

	assert.Equal(t, []string{"rest", "**b** rest", "<p><strong>b</strong> rest</p>"}, cb.written)
}

func TestSession_CopyFailure(t *testing.T) {
	s := New("x", WithClipboard(&fakeClipboard{writeErr: errors.New("no display")}))
	assert.ErrorIs(t, s.Copy(CopyText), ErrClipboardUnavailable)
}
