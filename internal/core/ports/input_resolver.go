package ports

// InputResolver defines the interface for resolving input files.
//
//go:generate go run go.uber.org/mock/mockgen -source=input_resolver.go -destination=mocks/mock_input_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves the given input patterns to a list of
	// concrete file paths relative to root. Literal paths pass through
	// unchanged even when the file is missing, so a missing declared
	// input still surfaces in the verdict.
	ResolveInputs(patterns []string, root string) ([]string, error)
}
