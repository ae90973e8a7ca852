package ports

import "go.trai.ch/fresh/internal/core/domain"

// ProjectResolver maps an opaque host project handle to the logical project
// and its currently active configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_resolver.go -destination=mocks/mock_project_resolver.go -package=mocks
type ProjectResolver interface {
	// ActiveConfiguration resolves the handle. A miss (unknown handle, or
	// a project with no active configuration) is reported as ok == false,
	// never as an error.
	ActiveConfiguration(handle domain.ProjectHandle) (project, configuration string, ok bool)
}
