package domain

// BuildAction is the set of operation flags carried by a build-lifecycle
// event. The host may combine flags (a rebuild carries both ActionBuild and
// ActionForceUpdate).
type BuildAction uint32

const (
	// ActionBuild indicates outputs are (re)generated.
	ActionBuild BuildAction = 1 << iota
	// ActionForceUpdate indicates outputs are regenerated regardless of prior state.
	ActionForceUpdate
	// ActionClean indicates outputs are removed.
	ActionClean
	// ActionDeploy indicates outputs are deployed.
	ActionDeploy
)

// IsBuild reports whether the action regenerates outputs. Clean-only and
// deploy-only actions do not affect the up-to-date state machine.
func (a BuildAction) IsBuild() bool {
	return a&ActionBuild != 0
}

// IsRebuild reports whether the action is a forced full rebuild.
func (a BuildAction) IsRebuild() bool {
	return a&(ActionBuild|ActionForceUpdate) == ActionBuild|ActionForceUpdate
}

// ProjectHandle is the opaque identifier by which the host build manager
// refers to a project. Handles resolve to a logical project and its active
// configuration through a ProjectResolver.
type ProjectHandle string
