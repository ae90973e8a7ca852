// Package lifecycle bridges the host's build-lifecycle events to the
// registered decision-engine instances.
package lifecycle

import (
	"sync"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
)

type registryKey struct {
	project       string
	configuration string
}

// Registry maps a project configuration to the checker instances registered
// for it. Registration and lookup happen concurrently as projects load and
// unload while the host dispatches build events, so all access is guarded.
type Registry struct {
	mu      sync.RWMutex
	targets map[registryKey][]ports.Checker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[registryKey][]ports.Checker),
	}
}

// Register adds a checker for the given project configuration. Multiple
// checkers may be registered for the same configuration; each receives every
// lifecycle notification.
func (r *Registry) Register(project, configuration string, checker ports.Checker) error {
	if checker == nil {
		return domain.ErrNilChecker
	}

	key := registryKey{project: project, configuration: configuration}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[key] = append(r.targets[key], checker)
	return nil
}

// Unregister removes all checkers for the given project configuration.
// Called as projects unload; unknown configurations are a no-op.
func (r *Registry) Unregister(project, configuration string) {
	key := registryKey{project: project, configuration: configuration}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, key)
}

// Targets returns the checkers registered for the given project
// configuration. The returned slice is a copy; callers may iterate it without
// holding up registration.
func (r *Registry) Targets(project, configuration string) []ports.Checker {
	key := registryKey{project: project, configuration: configuration}

	r.mu.RLock()
	defer r.mu.RUnlock()

	registered := r.targets[key]
	if len(registered) == 0 {
		return nil
	}
	out := make([]ports.Checker, len(registered))
	copy(out, registered)
	return out
}
