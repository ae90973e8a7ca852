package host

import (
	"sync"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
)

var _ ports.ProjectResolver = (*TableResolver)(nil)

type resolution struct {
	project       string
	configuration string
}

// TableResolver is a map-backed project resolver. The embedding host binds
// each opaque handle to a project and its active configuration as projects
// load, and unbinds as they unload.
type TableResolver struct {
	mu    sync.RWMutex
	table map[domain.ProjectHandle]resolution
}

// NewTableResolver creates an empty resolver.
func NewTableResolver() *TableResolver {
	return &TableResolver{
		table: make(map[domain.ProjectHandle]resolution),
	}
}

// Bind associates the handle with a project and its active configuration,
// replacing any prior binding (the active configuration changed).
func (r *TableResolver) Bind(handle domain.ProjectHandle, project, configuration string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[handle] = resolution{project: project, configuration: configuration}
}

// Unbind removes the handle's binding. Unknown handles are a no-op.
func (r *TableResolver) Unbind(handle domain.ProjectHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.table, handle)
}

// ActiveConfiguration implements ports.ProjectResolver.
func (r *TableResolver) ActiveConfiguration(handle domain.ProjectHandle) (string, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.table[handle]
	if !ok {
		return "", "", false
	}
	return res.project, res.configuration, true
}
