package domain

import "go.trai.ch/zerr"

var (
	// ErrNilSnapshot is returned when a nil snapshot is passed to an evaluation.
	ErrNilSnapshot = zerr.New("nil configuration snapshot")

	// ErrMissingConfiguration is returned when a snapshot has no configuration identity.
	ErrMissingConfiguration = zerr.New("snapshot has no configuration")

	// ErrNilChecker is returned when a nil checker is registered for notification.
	ErrNilChecker = zerr.New("nil checker")

	// ErrNotifierStarted is returned when a notifier is started twice.
	ErrNotifierStarted = zerr.New("notifier already started")

	// ErrProjectNotFound is returned when a requested project is not in the manifest.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrStaleDetected is returned by a check run in which at least one
	// configuration was found stale.
	ErrStaleDetected = zerr.New("stale configurations detected")
)
