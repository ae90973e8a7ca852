package domain

import "fmt"

// Status is the outcome of an up-to-date evaluation.
type Status string

const (
	// StatusUpToDate indicates the declared outputs are current with respect to the inputs.
	StatusUpToDate Status = "UpToDate"
	// StatusStale indicates at least one output must be regenerated.
	StatusStale Status = "Stale"
)

// ReasonKind classifies why a configuration was found stale.
type ReasonKind string

const (
	// ReasonNone is set on up-to-date verdicts.
	ReasonNone ReasonKind = ""
	// ReasonOutputMissing indicates a declared output does not exist on disk.
	ReasonOutputMissing ReasonKind = "OutputMissing"
	// ReasonInputMissing indicates a declared input does not exist on disk.
	ReasonInputMissing ReasonKind = "InputMissing"
	// ReasonInputNewer indicates an input is strictly newer than the oldest output.
	ReasonInputNewer ReasonKind = "InputNewerThanOutput"
	// ReasonCopyItemStale indicates a copy-to-output destination is older than its source.
	ReasonCopyItemStale ReasonKind = "CopyItemStale"
	// ReasonNoOutputs indicates the configuration declares nothing that could be checked.
	ReasonNoOutputs ReasonKind = "NoOutputs"
	// ReasonItemsChanged indicates the declared item sets changed since the last successful build.
	ReasonItemsChanged ReasonKind = "ItemsChanged"
	// ReasonBuildInProgress indicates a build is currently in flight for the configuration.
	ReasonBuildInProgress ReasonKind = "BuildInProgress"
)

// Verdict is the result of one up-to-date evaluation. It is recomputed per
// request and never persisted. Stale verdicts carry a human-readable reason
// plus the offending paths where applicable.
type Verdict struct {
	Status Status
	Kind   ReasonKind
	Reason string

	// Input and Output identify the item pair that triggered staleness,
	// when the reason concerns a specific pair.
	Input  string
	Output string
}

// IsUpToDate reports whether the verdict allows skipping the build.
func (v Verdict) IsUpToDate() bool {
	return v.Status == StatusUpToDate
}

// UpToDate returns an up-to-date verdict.
func UpToDate() Verdict {
	return Verdict{Status: StatusUpToDate}
}

// StaleOutputMissing returns a stale verdict citing a missing output.
func StaleOutputMissing(output string) Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonOutputMissing,
		Reason: fmt.Sprintf("output missing: %s", output),
		Output: output,
	}
}

// StaleInputMissing returns a stale verdict citing a missing input.
func StaleInputMissing(input string) Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonInputMissing,
		Reason: fmt.Sprintf("input missing: %s", input),
		Input:  input,
	}
}

// StaleInputNewer returns a stale verdict citing an input that is newer than
// the oldest declared output.
func StaleInputNewer(input, output string) Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonInputNewer,
		Reason: fmt.Sprintf("input %s is newer than output %s", input, output),
		Input:  input,
		Output: output,
	}
}

// StaleCopyItem returns a stale verdict citing a copy item whose destination
// is older than its source.
func StaleCopyItem(source, destination string) Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonCopyItemStale,
		Reason: fmt.Sprintf("copy destination %s is older than source %s", destination, source),
		Input:  source,
		Output: destination,
	}
}

// StaleNoOutputs returns a stale verdict for a configuration that declares no
// checkable outputs. Skipping a build we cannot verify would risk treating a
// never-built project as complete.
func StaleNoOutputs() Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonNoOutputs,
		Reason: "no outputs declared",
	}
}

// StaleItemsChanged returns a stale verdict for a configuration whose declared
// item sets no longer match those captured at the last successful build.
func StaleItemsChanged() Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonItemsChanged,
		Reason: "project items changed since last build",
	}
}

// StaleBuildInProgress returns a stale verdict for a configuration with a
// build currently in flight. Any answer derived mid-build is unreliable, so
// the caller is told to build (or wait) rather than skip.
func StaleBuildInProgress() Verdict {
	return Verdict{
		Status: StatusStale,
		Kind:   ReasonBuildInProgress,
		Reason: "build in progress",
	}
}
