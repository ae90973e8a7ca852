package check

import (
	"time"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/zerr"
)

// Evaluate compares the snapshot's declared inputs against its declared
// outputs using timestamps from the cache and returns a verdict.
//
// Evaluate is a pure function of the snapshot and the cache's view of disk:
// the same arguments produce the same verdict on every call. Missing files
// never raise an error; they drive the verdict. Evaluate fails only when the
// snapshot itself is malformed, which is a programming-contract violation at
// the caller.
//
// Every input is compared against the oldest declared output. If any output
// is stale relative to any input the whole check fails, so a partial build
// that regenerated only some outputs is never reported as complete. Equal
// timestamps count as up to date, tolerating coarse filesystem timestamp
// granularity.
func Evaluate(snapshot *domain.Snapshot, cache *TimestampCache) (domain.Verdict, error) {
	if snapshot == nil {
		return domain.Verdict{}, domain.ErrNilSnapshot
	}
	if snapshot.Configuration.String() == "" {
		return domain.Verdict{}, zerr.With(zerr.Wrap(domain.ErrMissingConfiguration, ""), "project", snapshot.Project.String())
	}

	if len(snapshot.Outputs) == 0 && len(snapshot.CopyItems) == 0 {
		return domain.StaleNoOutputs(), nil
	}

	// Without primary outputs there is nothing to compare input ages
	// against, but declared inputs must still exist.
	var oldest *outputTime
	if len(snapshot.Outputs) > 0 {
		o, verdict := oldestOutputTime(snapshot, cache)
		if verdict != nil {
			return *verdict, nil
		}
		oldest = &o
	}

	if v := compareInputs(snapshot, cache, oldest); v != nil {
		return *v, nil
	}

	if v := compareCopyItems(snapshot, cache); v != nil {
		return *v, nil
	}

	return domain.UpToDate(), nil
}

type outputTime struct {
	path string
	at   time.Time
}

// oldestOutputTime finds the most conservative output to compare against.
// Any absent output short-circuits to a stale verdict regardless of inputs.
func oldestOutputTime(snapshot *domain.Snapshot, cache *TimestampCache) (outputTime, *domain.Verdict) {
	var oldest outputTime
	for i, output := range snapshot.Outputs {
		path := output.String()
		at, ok := cache.GetTimestampUTC(path)
		if !ok {
			v := domain.StaleOutputMissing(path)
			return outputTime{}, &v
		}
		if i == 0 || at.Before(oldest.at) {
			oldest = outputTime{path: path, at: at}
		}
	}
	return oldest, nil
}

// compareInputs checks that every declared input exists and, when a primary
// output is available to compare against (oldest != nil), that no input is
// strictly newer than it.
func compareInputs(snapshot *domain.Snapshot, cache *TimestampCache, oldest *outputTime) *domain.Verdict {
	for _, input := range snapshot.Inputs {
		path := input.String()
		at, ok := cache.GetTimestampUTC(path)
		if !ok {
			// A required input that does not exist means a build is
			// needed to produce it, or the configuration is broken
			// and the build will surface the real error.
			v := domain.StaleInputMissing(path)
			return &v
		}
		if oldest != nil && at.After(oldest.at) {
			v := domain.StaleInputNewer(path, oldest.path)
			return &v
		}
	}

	for _, ref := range snapshot.References {
		if !ref.HasOutput {
			v := domain.StaleInputMissing(ref.Project.String())
			return &v
		}
		if oldest != nil && ref.OutputTimeUTC.After(oldest.at) {
			v := domain.StaleInputNewer(ref.Project.String(), oldest.path)
			return &v
		}
	}

	return nil
}

// compareCopyItems checks each copy-to-output item pair independently of the
// primary outputs: a stale destination copy forces a build even when the
// compiled outputs are current.
func compareCopyItems(snapshot *domain.Snapshot, cache *TimestampCache) *domain.Verdict {
	for _, item := range snapshot.CopyItems {
		sourceAt, ok := cache.GetTimestampUTC(item.Source)
		if !ok {
			v := domain.StaleInputMissing(item.Source)
			return &v
		}

		destAt, ok := cache.GetTimestampUTC(item.Destination)
		if !ok {
			v := domain.StaleOutputMissing(item.Destination)
			return &v
		}

		if destAt.Before(sourceAt) {
			v := domain.StaleCopyItem(item.Source, item.Destination)
			return &v
		}
	}
	return nil
}
