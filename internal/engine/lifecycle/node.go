package lifecycle

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/fresh/internal/adapters/host" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the checker registry Graft node.
	RegistryNodeID graft.ID = "engine.lifecycle.registry"
	// NotifierNodeID is the unique identifier for the notifier Graft node.
	NotifierNodeID graft.ID = "engine.lifecycle.notifier"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[*Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			host.BusNodeID,
			host.ResolverNodeID,
			host.FaultLogNodeID,
			RegistryNodeID,
		},
		Run: func(ctx context.Context) (*Notifier, error) {
			manager, err := graft.Dep[ports.BuildManager](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*host.TableResolver](ctx)
			if err != nil {
				return nil, err
			}

			faults, err := graft.Dep[ports.FaultReporter](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}

			return NewNotifier(manager, resolver, registry, faults, clockwork.NewRealClock()), nil
		},
	})
}
