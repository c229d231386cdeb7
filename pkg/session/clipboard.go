package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when the clipboard cannot be read or
// written. Session state is never changed when it is returned.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is the platform clipboard as seen by the session
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard talks to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(s)
}

// ReadClipboard reads cb, giving up when ctx is done. The read itself may
// keep running in the background; its result is dropped.
func ReadClipboard(ctx context.Context, cb Clipboard) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		text, err := cb.ReadText()
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", clipboardError(ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", clipboardError(r.err)
		}
		return r.text, nil
	}
}

func clipboardError(err error) error {
	if errors.Is(err, ErrClipboardUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
}

// PasteResult is the outcome of a clipboard read
type PasteResult struct {
	Text string
	Err  error
}

// PasteRequest performs the blocking clipboard read. It touches no session
// state and may run on any goroutine.
type PasteRequest func() PasteResult

// CopySource selects what Copy puts on the clipboard
type CopySource int

const (
	CopySelection CopySource = iota
	CopyText
	CopyHTML
)

// RequestPaste returns the read half of a paste. Run it off the owning
// goroutine and hand its result to CompletePaste.
func (s *Session) RequestPaste(ctx context.Context) PasteRequest {
	cb := s.clipboard
	return func() PasteResult {
		text, err := ReadClipboard(ctx, cb)
		return PasteResult{Text: text, Err: err}
	}
}

// CompletePaste applies a finished clipboard read. A failed read reports
// ErrClipboardUnavailable and leaves text and history untouched; an empty
// clipboard is a no-op.
func (s *Session) CompletePaste(res PasteResult) error {
	if res.Err != nil {
		s.logger.Debug("paste failed", "error", res.Err)
		return clipboardError(res.Err)
	}
	if res.Text == "" {
		return nil
	}

	rs := []rune(s.Text())
	sel := s.Selection()

	out := make([]rune, 0, len(rs)+len(res.Text))
	out = append(out, rs[:sel.Start]...)
	pasted := []rune(res.Text)
	out = append(out, pasted...)
	out = append(out, rs[sel.End:]...)

	s.Edit(string(out), sel.Start+len(pasted))
	s.logger.Debug("pasted", "runes", len(pasted))
	return nil
}

// Paste reads the clipboard synchronously and applies the result
func (s *Session) Paste(ctx context.Context) error {
	return s.CompletePaste(s.RequestPaste(ctx)())
}

// Copy writes the selected text, the whole text, or the compiled HTML to
// the clipboard. Copying an empty selection reports ErrEmptySelection.
func (s *Session) Copy(src CopySource) error {
	var content string
	switch src {
	case CopySelection:
		if s.Selection().IsEmpty() {
			return ErrEmptySelection
		}
		content = s.SelectedText()
	case CopyText:
		content = s.Text()
	case CopyHTML:
		content = s.Compile()
	}

	if err := s.clipboard.WriteText(content); err != nil {
		s.logger.Debug("copy failed", "error", err)
		return clipboardError(err)
	}
	return nil
}
