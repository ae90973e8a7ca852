package ports

import "go.trai.ch/fresh/internal/core/domain"

// BuildEvent announces that a build operation is beginning for the project
// identified by Handle.
type BuildEvent struct {
	Handle domain.ProjectHandle
	Action domain.BuildAction
}

// BuildDoneEvent announces that a build operation has finished.
type BuildDoneEvent struct {
	Handle    domain.ProjectHandle
	Action    domain.BuildAction
	Succeeded bool
	Cancelled bool
}

// BuildEventHandler receives build-lifecycle signals from the host build
// manager. For a single handle, BuildBegin is always delivered before the
// matching BuildDone; no ordering is guaranteed across handles. The host
// delivers events on its own thread, so handlers must not block.
type BuildEventHandler interface {
	BuildBegin(ev BuildEvent)
	BuildDone(ev BuildDoneEvent)
}

// Subscription is a live registration with the build manager. Dispose must be
// released exactly once on teardown; implementations tolerate repeated calls.
type Subscription interface {
	Dispose() error
}

// BuildManager abstracts the host's build event source.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_manager.go -destination=mocks/mock_build_manager.go -package=mocks
type BuildManager interface {
	// Subscribe registers the handler for build-begin and build-done
	// signals and returns the subscription owning the registration.
	Subscribe(handler BuildEventHandler) (Subscription, error)
}
