package rowan

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// FrameStats holds per-frame traversal metrics, populated by the compositor
// on every RenderFrame.
type FrameStats struct {
	// ItemCount is the number of items traversed (visible set plus
	// always-drawn).
	ItemCount int
	// InterstitialCount is the number of registered interstitial drawers.
	InterstitialCount int
	// InterstitialCalls is the total interstitial invocations this frame:
	// InterstitialCount * (ItemCount + 1).
	InterstitialCalls int
	// Submissions counts draw primitive calls accepted this frame.
	Submissions int
	// FrameTime is the wall time of the whole RenderFrame call.
	FrameTime time.Duration
}

// newDebugLogger builds the logger used for per-frame stats when debug mode
// is on.
func newDebugLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "rowan"})
}

// logFrameStats emits one structured line per frame.
func logFrameStats(logger *log.Logger, backend BackendKind, frame uint64, stats FrameStats) {
	logger.Debug("frame",
		"n", frame,
		"backend", backend.String(),
		"items", stats.ItemCount,
		"interstitials", stats.InterstitialCount,
		"interstitial_calls", stats.InterstitialCalls,
		"submissions", stats.Submissions,
		"time", stats.FrameTime,
	)
}

// globalDebug mirrors the most recently set Stage debug flag so that object
// lifecycle operations (which lack a Stage pointer) can check it cheaply.
// Only valid with a single Stage; multiple Stages with differing debug modes
// will reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDestroyed panics with a descriptive message when a destroyed
// object is used in a lifecycle operation. Only called in debug mode; in
// release mode callers skip this entirely.
func debugCheckDestroyed(o *Object, op string) {
	if o.destroyed {
		panic(fmt.Sprintf("rowan debug: %s on destroyed object %q", op, o.name))
	}
}
