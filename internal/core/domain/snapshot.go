// Package domain contains the pure types of the up-to-date check engine.
package domain

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CopyItem is a file copied verbatim into the output directory as part of
// producing build output. It participates in the check as both an input (the
// source) and an output (the destination copy).
type CopyItem struct {
	Source      string
	Destination string
}

// Reference is a project-to-project reference participating as an input whose
// timestamp is the referenced project's own most recent output time. The
// caller supplies the already-known timestamp so the check chains without
// recursively evaluating the referenced project.
type Reference struct {
	Project       InternedString
	OutputTimeUTC time.Time
	HasOutput     bool
}

// Snapshot describes one build configuration of one project: its identity and
// the declared input and output item sets the check compares. Snapshots own
// no filesystem state; all timestamp reads route through the evaluation's
// timestamp cache.
type Snapshot struct {
	Project       InternedString
	Configuration InternedString
	Inputs        []InternedString
	Outputs       []InternedString
	CopyItems     []CopyItem
	References    []Reference
}

// Fingerprint returns a stable hash of the declared item sets, insensitive to
// declaration order. Two snapshots with the same items produce the same
// fingerprint; a changed fingerprint means the project definition changed and
// any prior build can no longer be trusted to cover the current items.
func (s *Snapshot) Fingerprint() uint64 {
	h := xxhash.New()

	writeSection(h, []string{s.Project.String(), s.Configuration.String()})
	writeSection(h, sortedStrings(s.Inputs))
	writeSection(h, sortedStrings(s.Outputs))

	copies := make([]string, len(s.CopyItems))
	for i, c := range s.CopyItems {
		copies[i] = c.Source + "\x00" + c.Destination
	}
	slices.Sort(copies)
	writeSection(h, copies)

	refs := make([]string, len(s.References))
	for i, r := range s.References {
		refs[i] = r.Project.String()
	}
	slices.Sort(refs)
	writeSection(h, refs)

	return h.Sum64()
}

func writeSection(h *xxhash.Digest, items []string) {
	for _, item := range items {
		_, _ = h.WriteString(item)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
}

func sortedStrings(items []InternedString) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	slices.Sort(out)
	return out
}
