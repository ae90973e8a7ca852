package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/fresh/internal/core/ports"
)

const (
	// BusNodeID is the unique identifier for the build bus Graft node.
	BusNodeID graft.ID = "adapter.host.bus"
	// ResolverNodeID is the unique identifier for the table resolver Graft node.
	ResolverNodeID graft.ID = "adapter.host.resolver"
	// FaultLogNodeID is the unique identifier for the fault log Graft node.
	FaultLogNodeID graft.ID = "adapter.host.faultlog"
)

func init() {
	graft.Register(graft.Node[ports.BuildManager]{
		ID:        BusNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.BuildManager, error) {
			return NewBuildBus(), nil
		},
	})

	// Registered as the concrete type: the app layer owns the write side
	// (Bind/Unbind) while the notifier consumes it as a ports.ProjectResolver.
	graft.Register(graft.Node[*TableResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*TableResolver, error) {
			return NewTableResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.FaultReporter]{
		ID:        FaultLogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FaultReporter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFaultLog(log), nil
		},
	})
}
