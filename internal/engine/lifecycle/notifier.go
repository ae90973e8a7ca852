package lifecycle

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildEventHandler = (*Notifier)(nil)

// Notifier subscribes to the host build manager and forwards build-begin and
// build-done signals to the checkers registered for the affected project
// configuration.
//
// The host delivers events on its own thread. Begin notifications are cheap
// state transitions and run inline; done notifications are dispatched to a
// background goroutine so re-querying checkers never blocks the host's
// build-completion callback. Failures on that path go to the fault reporter
// and never propagate back into the host's event dispatch.
type Notifier struct {
	manager  ports.BuildManager
	resolver ports.ProjectResolver
	registry *Registry
	faults   ports.FaultReporter
	clock    clockwork.Clock

	mu      sync.Mutex
	sub     ports.Subscription
	closed  bool
	pending sync.WaitGroup
}

// NewNotifier creates a notifier over the given collaborators. The registry
// is owned by the hosting layer; the notifier only reads it.
func NewNotifier(
	manager ports.BuildManager,
	resolver ports.ProjectResolver,
	registry *Registry,
	faults ports.FaultReporter,
	clock clockwork.Clock,
) *Notifier {
	return &Notifier{
		manager:  manager,
		resolver: resolver,
		registry: registry,
		faults:   faults,
		clock:    clock,
	}
}

// Start subscribes to the build manager. Calling Start twice, or after
// Close, is a contract violation.
func (n *Notifier) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sub != nil || n.closed {
		return domain.ErrNotifierStarted
	}

	sub, err := n.manager.Subscribe(n)
	if err != nil {
		return zerr.Wrap(err, "failed to subscribe to build manager")
	}
	n.sub = sub
	return nil
}

// Close releases the build manager subscription exactly once and waits for
// in-flight background notifications to drain. Events delivered after Close
// are dropped, so the drain cannot race a late completion dispatch.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	sub := n.sub
	n.sub = nil
	n.mu.Unlock()

	var err error
	if sub != nil {
		err = sub.Dispose()
	}
	n.pending.Wait()
	return err
}

// BuildBegin implements ports.BuildEventHandler. Checkers for the affected
// configuration transition to the building state, timestamped at notification
// time. Actions without the build flag, and any resolution miss, are silent
// no-ops.
func (n *Notifier) BuildBegin(ev ports.BuildEvent) {
	if !ev.Action.IsBuild() {
		return
	}

	targets := n.resolve(ev.Handle)
	if len(targets) == 0 {
		return
	}

	at := n.clock.Now().UTC()
	for _, target := range targets {
		target.NotifyBuildStarting(at)
	}
}

// BuildDone implements ports.BuildEventHandler. Completion notifications run
// off the calling thread; a cancelled build resolves the building state
// inline without a completion notification. Events racing Close are dropped.
func (n *Notifier) BuildDone(ev ports.BuildDoneEvent) {
	if !ev.Action.IsBuild() {
		return
	}

	targets := n.resolve(ev.Handle)
	if len(targets) == 0 {
		return
	}

	if ev.Cancelled {
		n.mu.Lock()
		closed := n.closed
		n.mu.Unlock()
		if closed {
			return
		}
		for _, target := range targets {
			target.ResolveCancelled()
		}
		return
	}

	// Add must happen under the lock that Close takes before draining, or a
	// late event could add to the WaitGroup after the drain has started.
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.pending.Add(1)
	n.mu.Unlock()

	go n.dispatchCompleted(targets, ev.Succeeded, ev.Action.IsRebuild())
}

// dispatchCompleted notifies each target in isolation: one failing checker
// does not block notification of the others, and every failure is routed to
// the fault reporter rather than left unobserved.
func (n *Notifier) dispatchCompleted(targets []ports.Checker, succeeded, isRebuild bool) {
	defer n.pending.Done()
	for _, target := range targets {
		n.notifyCompleted(target, succeeded, isRebuild)
	}
}

func (n *Notifier) notifyCompleted(target ports.Checker, succeeded, isRebuild bool) {
	defer func() {
		if r := recover(); r != nil {
			n.faults.ReportFault(zerr.New(fmt.Sprintf("build completion notification panicked: %v", r)))
		}
	}()

	if err := target.NotifyBuildCompleted(succeeded, isRebuild); err != nil {
		n.faults.ReportFault(zerr.Wrap(err, "build completion notification failed"))
	}
}

// resolve maps a host handle to the registered checkers for its active
// configuration. An unknown handle, a project with no active configuration,
// or a configuration with no registered checkers all resolve to nothing.
func (n *Notifier) resolve(handle domain.ProjectHandle) []ports.Checker {
	project, configuration, ok := n.resolver.ActiveConfiguration(handle)
	if !ok {
		return nil
	}
	return n.registry.Targets(project, configuration)
}
