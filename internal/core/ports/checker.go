package ports

import (
	"time"

	"go.trai.ch/fresh/internal/core/domain"
)

// Checker is the contract each registered decision-engine instance implements
// to answer up-to-date queries and participate in build-lifecycle
// notification.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type Checker interface {
	// IsUpToDate evaluates the snapshot against current disk state and
	// returns a verdict. It fails only on a malformed snapshot; missing
	// files drive the verdict, not errors.
	IsUpToDate(snapshot *domain.Snapshot) (domain.Verdict, error)

	// NotifyBuildStarting informs the checker that a build of its
	// configuration is beginning at the given time. Any verdict in flight
	// is racing that build and must not be trusted past this point.
	NotifyBuildStarting(at time.Time)

	// NotifyBuildCompleted informs the checker that the build finished.
	// A rebuild invalidates all prior state; a successful build
	// establishes the current item set as the new baseline.
	NotifyBuildCompleted(succeeded, isRebuild bool) error

	// ResolveCancelled clears the in-flight build state after a cancelled
	// build, which produces no completion notification. The outcome is
	// unknown; the next evaluation re-stats files as usual.
	ResolveCancelled()
}
