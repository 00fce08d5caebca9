package download

import (
	"sync"
	"time"

	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/juju/clock"
	"go.uber.org/zap"
)

// CopiedResetDelay is how long the "Copied" badge stays on a row.
const CopiedResetDelay = 2 * time.Second

// Clipboard receives copied checksums.
type Clipboard interface {
	WriteText(text string) error
}

// CopyTracker holds the single "last copied" checksum marker of a download
// button. The marker moves immediately on every successful copy and is
// cleared CopiedResetDelay after the most recent one.
type CopyTracker struct {
	logger    *zap.Logger
	clock     clock.Clock
	clipboard Clipboard

	mu     sync.Mutex
	copied string
	timer  clock.Timer
	gen    uint64
	closed bool
}

func NewCopyTracker(logger *zap.Logger, clk clock.Clock, clipboard Clipboard) *CopyTracker {
	if clk == nil {
		clk = clock.WallClock
	}
	return &CopyTracker{
		logger:    logger,
		clock:     clk,
		clipboard: clipboard,
	}
}

// Copy writes checksum to the clipboard and marks it as copied. When the
// write fails, or the tracker has no clipboard, the marker is left as it was.
func (t *CopyTracker) Copy(checksum string) error {
	if t.isClosed() {
		return nil
	}
	if t.clipboard == nil {
		t.logger.Warn("No clipboard to copy checksum to",
			zap.String("checksum", checksum),
		)
		return errs.ErrClipboardWriteFailed.WithDetails("no clipboard")
	}
	if err := t.clipboard.WriteText(checksum); err != nil {
		t.logger.Warn("Failed to write checksum to clipboard",
			zap.String("checksum", checksum),
			zap.Error(err),
		)
		return errs.ErrClipboardWriteFailed.Wrap(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	t.copied = checksum

	gen := t.gen
	t.timer = t.clock.AfterFunc(CopiedResetDelay, func() {
		t.reset(gen)
	})
	return nil
}

// reset clears the marker unless a newer copy replaced it.
func (t *CopyTracker) reset(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen {
		return
	}
	t.copied = ""
	t.timer = nil
}

func (t *CopyTracker) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Copied returns the checksum currently marked as copied, or "" when idle.
func (t *CopyTracker) Copied() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.copied
}

// Close cancels a pending reset. The tracker ignores copies afterwards.
func (t *CopyTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	t.closed = true
}
