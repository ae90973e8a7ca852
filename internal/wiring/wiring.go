// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fresh/internal/adapters/config"
	_ "go.trai.ch/fresh/internal/adapters/fs"
	_ "go.trai.ch/fresh/internal/adapters/host"
	_ "go.trai.ch/fresh/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/fresh/internal/app"
	_ "go.trai.ch/fresh/internal/engine/check"
	_ "go.trai.ch/fresh/internal/engine/lifecycle"
)
