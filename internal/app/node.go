package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/fresh/internal/engine/check"
	"go.trai.ch/fresh/internal/engine/lifecycle"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			check.FactoryNodeID,
			lifecycle.RegistryNodeID,
			host.ResolverNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[*check.Factory](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*lifecycle.Registry](ctx)
			if err != nil {
				return nil, err
			}

			hosts, err := graft.Dep[*host.TableResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, factory, registry, hosts, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			lifecycle.RegistryNodeID,
			lifecycle.NotifierNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*lifecycle.Registry](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[*lifecycle.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Registry: registry,
		Notifier: notifier,
	}, nil
}
