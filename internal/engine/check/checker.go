package check

import (
	"sync"
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
)

var _ ports.Checker = (*Checker)(nil)

// Checker is the stateful decision engine for one project configuration. It
// answers on-demand up-to-date queries and tracks the build lifecycle of its
// configuration so queries racing a build are never trusted.
//
// Each query owns a fresh TimestampCache, so every evaluation re-stats and
// reflects current disk state. The only state carried across evaluations is
// the build phase and the item-set fingerprint captured at the last
// successful build.
type Checker struct {
	fs ports.FileSystem

	mu sync.Mutex
	// building is true between NotifyBuildStarting and the matching
	// completion (or cancellation resolution).
	building       bool
	buildStartedAt time.Time
	// lastSeen is the fingerprint of the most recently evaluated snapshot;
	// it becomes the baseline when a build completes successfully.
	lastSeen    uint64
	hasSeen     bool
	baseline    uint64
	hasBaseline bool
}

// NewChecker creates a checker for one project configuration.
func NewChecker(fs ports.FileSystem) *Checker {
	return &Checker{fs: fs}
}

// IsUpToDate evaluates the snapshot against current disk state.
//
// While a build is in flight the answer is inherently unreliable, so the
// checker reports stale without touching the filesystem. If the declared
// item set no longer matches the one captured at the last successful build,
// the prior build cannot cover the current items and the checker reports
// stale without statting either.
func (c *Checker) IsUpToDate(snapshot *domain.Snapshot) (domain.Verdict, error) {
	if snapshot == nil {
		return domain.Verdict{}, domain.ErrNilSnapshot
	}

	fp := snapshot.Fingerprint()

	c.mu.Lock()
	if c.building {
		c.mu.Unlock()
		return domain.StaleBuildInProgress(), nil
	}
	c.lastSeen = fp
	c.hasSeen = true
	itemsChanged := c.hasBaseline && c.baseline != fp
	c.mu.Unlock()

	if itemsChanged {
		return domain.StaleItemsChanged(), nil
	}

	return Evaluate(snapshot, NewTimestampCache(c.fs))
}

// NotifyBuildStarting transitions the configuration to the building state.
// Any verdict concurrently in flight is racing this build and must not be
// cached past this point; queries from here until completion report stale.
func (c *Checker) NotifyBuildStarting(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.building = true
	c.buildStartedAt = at.UTC()
}

// NotifyBuildCompleted transitions the configuration back to idle.
//
// A rebuild regenerates all outputs regardless of prior state, so everything
// derived before it is dropped, including the fingerprint baseline. A
// successful build establishes the most recently evaluated item set as the
// baseline for detecting later item changes.
func (c *Checker) NotifyBuildCompleted(succeeded, isRebuild bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.building = false

	if isRebuild {
		c.hasBaseline = false
	}
	if succeeded && c.hasSeen {
		c.baseline = c.lastSeen
		c.hasBaseline = true
	}

	return nil
}

// ResolveCancelled clears the building state after a cancelled build, for
// which no completion notification arrives. The outcome is unknown, so no
// baseline is recorded; the next query simply re-stats files as usual.
func (c *Checker) ResolveCancelled() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.building = false
}

// BuildStartedAt returns the timestamp of the most recent build-start
// notification, for diagnostics.
func (c *Checker) BuildStartedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buildStartedAt
}
