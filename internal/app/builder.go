package app

import (
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/lifecycle"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Registry *lifecycle.Registry
	Notifier *lifecycle.Notifier
}
