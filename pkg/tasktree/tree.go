// Package tasktree renders nested progress indicators as a live tree on an
// ANSI terminal. Each task starts as an animated spinner line and resolves
// to a status glyph with a final message. Tasks nest strictly: only the most
// recently started open task may be ended.
package tasktree

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the delay between spinner frames.
const DefaultInterval = 100 * time.Millisecond

// flusher is implemented by buffered writers. Rendering is cosmetic, so
// flush failures are dropped rather than surfaced to the caller.
type flusher interface {
	Flush() error
}

// TaskTree renders a tree of tasks on one terminal writer. Methods are safe
// for concurrent use; one mutex serializes start, end, and animator ticks,
// so a task line is never torn mid-write.
// Mutable
type TaskTree struct {
	mu    sync.Mutex
	stack taskStack

	out      io.Writer
	theme    Theme
	interval time.Duration
	sleep    func(time.Duration)

	// spinning is true while exactly one animator goroutine runs. It is
	// claimed by compare-and-swap and cleared under mu, so at most one loop
	// is ever active and a racing Start never observes a shutdown gap.
	spinning   atomic.Bool
	spinStarts atomic.Uint64
}

// New returns a TaskTree rendering to standard output with the default
// colored theme.
func New() *TaskTree {
	return NewWriter(os.Stdout, DefaultTheme())
}

// NewWriter returns a TaskTree rendering to w with the given theme.
func NewWriter(w io.Writer, theme Theme) *TaskTree {
	return &TaskTree{
		out:      w,
		theme:    theme,
		interval: DefaultInterval,
		sleep:    time.Sleep,
	}
}

// SetInterval changes the spinner frame delay. It applies from the next
// tick.
func (t *TaskTree) SetInterval(d time.Duration) {
	t.mu.Lock()
	t.interval = d
	t.mu.Unlock()
}

// Start begins a new task, nested under the most recently started open task
// if one exists. The message is formatted fmt.Sprintf style.
func (t *TaskTree) Start(format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	t.mu.Lock()
	t.stack.push()

	size := t.stack.size()
	lastRow := 0
	if size > 1 {
		lastRow = t.stack.tasks[size-2].rowOffset
	}
	t.emit(renderOpen(size, lastRow, t.theme.Marker, message))

	// Claim the animator before releasing the lock. Under concurrent
	// starts only one caller wins the swap, so a second loop is never
	// spawned.
	if t.spinning.CompareAndSwap(false, true) {
		t.spinStarts.Add(1)
		go t.spin()
	}
	t.mu.Unlock()
}

// Pass resolves the most recently started open task with the success glyph.
func (t *TaskTree) Pass(format string, args ...any) {
	t.end(t.theme.Pass, fmt.Sprintf(format, args...))
}

// Warn resolves the most recently started open task with the warning glyph.
func (t *TaskTree) Warn(format string, args ...any) {
	t.end(t.theme.Warn, fmt.Sprintf(format, args...))
}

// Fail resolves the most recently started open task with the failure glyph.
func (t *TaskTree) Fail(format string, args ...any) {
	t.end(t.theme.Fail, fmt.Sprintf(format, args...))
}

// end pops the deepest task and overwrites its line with symbol and
// message. With no open task it degrades to a plain line print; that is a
// defined fallback, not an error. When the last open task resolves, a blank
// line closes the tree visually.
func (t *TaskTree) end(symbol, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	popped, ok := t.stack.pop()
	if !ok {
		t.emit(symbol + " " + message + "\n")
		return
	}

	t.emit(renderClose(popped.rowOffset, t.stack.size(), symbol, message))
	if t.stack.size() == 0 {
		t.emit("\n")
	}
}

// spin is the animator loop. It terminates only by observing an empty
// stack; the activity flag is cleared while the lock is still held, so a
// Start racing with shutdown always either finds the loop alive or wins the
// claim for a fresh one. The lock is released before sleeping so lifecycle
// calls are not starved.
func (t *TaskTree) spin() {
	frame := 0
	for {
		t.mu.Lock()
		if t.stack.size() == 0 {
			t.spinning.Store(false)
			t.mu.Unlock()
			return
		}

		t.emit(renderSpin(t.stack.offsets(), t.theme.Frames[frame]))
		interval := t.interval
		t.mu.Unlock()

		frame = (frame + 1) % len(t.theme.Frames)
		t.sleep(interval)
	}
}

// emit writes and flushes best-effort. Write and flush errors are dropped:
// the display must never abort the caller's real work.
func (t *TaskTree) emit(s string) {
	_, _ = io.WriteString(t.out, s)
	if f, ok := t.out.(flusher); ok {
		_ = f.Flush()
	}
}
