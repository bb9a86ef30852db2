// Package clipboard runs clipboard reads and writes off the UI thread.
//
// Sketches never touch the clipboard directly. Key handlers return Requests,
// the front-end runs them with Run (in a tea.Cmd or goroutine) and hands the
// Result back to the UI thread, where Apply delivers read text. Failures are
// logged and dropped.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/sketchpad/internal/log"
)

// ErrUnavailable is returned when no clipboard backend is usable.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard is a text clipboard.
type Clipboard interface {
	Available() bool
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Op is the kind of clipboard request.
type Op int

const (
	OpWrite Op = iota
	OpRead
)

func (o Op) String() string {
	if o == OpRead {
		return "read"
	}
	return "write"
}

// Request asks for a clipboard operation. OnRead receives the text of a
// successful read and runs on the UI thread.
type Request struct {
	Op     Op
	Text   string
	OnRead func(text string)
}

// Write builds a write request.
func Write(text string) Request { return Request{Op: OpWrite, Text: text} }

// Read builds a read request.
func Read(onRead func(text string)) Request { return Request{Op: OpRead, OnRead: onRead} }

// Result is the outcome of a Request. It doubles as a tea.Msg.
type Result struct {
	Request Request
	Text    string
	Err     error
}

// Run performs req against cb. It may block.
func Run(cb Clipboard, req Request) Result {
	res := Result{Request: req}
	if cb == nil || !cb.Available() {
		res.Err = ErrUnavailable
		return res
	}
	switch req.Op {
	case OpWrite:
		if err := cb.WriteAll(req.Text); err != nil {
			res.Err = fmt.Errorf("writing clipboard: %w", err)
		}
	case OpRead:
		text, err := cb.ReadAll()
		if err != nil {
			res.Err = fmt.Errorf("reading clipboard: %w", err)
		}
		res.Text = text
	}
	return res
}

// Apply delivers a finished Result. Must be called on the UI thread.
// Returns true when sketch state may have changed.
func Apply(res Result) bool {
	if res.Err != nil {
		log.ErrorErr(log.CatClipboard, "clipboard request failed", res.Err, "op", res.Request.Op)
		return false
	}
	log.Debug(log.CatClipboard, "clipboard request done", "op", res.Request.Op, "bytes", len(res.Text)+len(res.Request.Text))
	if res.Request.Op == OpRead && res.Request.OnRead != nil {
		res.Request.OnRead(res.Text)
		return true
	}
	return false
}

// Cmd wraps Run as a bubbletea command producing a Result message.
func Cmd(cb Clipboard, req Request) tea.Cmd {
	return func() tea.Msg {
		return Run(cb, req)
	}
}

// Cmds batches requests. Requests run concurrently, so a cut followed by a
// paste in the same batch has no ordering guarantee.
func Cmds(cb Clipboard, reqs []Request) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(reqs))
	for i, r := range reqs {
		cmds[i] = Cmd(cb, r)
	}
	return tea.Batch(cmds...)
}

// Go runs reqs sequentially in a goroutine and sends each Result to out.
// Used by front-ends without a command loop.
func Go(cb Clipboard, reqs []Request, out chan<- Result) {
	if len(reqs) == 0 {
		return
	}
	go func() {
		for _, r := range reqs {
			out <- Run(cb, r)
		}
	}()
}

type system struct{}

// System returns the OS clipboard (xclip/xsel/wl-clipboard, pbcopy, or the
// Windows API, as found by atotto/clipboard).
func System() Clipboard { return system{} }

func (system) Available() bool { return !clipboard.Unsupported }
func (system) ReadAll() (string, error) { return clipboard.ReadAll() }
func (system) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Memory is an in-process clipboard. Set Fail to make every call error.
type Memory struct {
	mu   sync.Mutex
	text string
	Fail error
}

func (m *Memory) Available() bool { return true }

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return "", m.Fail
	}
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.text = text
	return nil
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
