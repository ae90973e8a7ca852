package check

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fresh/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fresh/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the checker factory Graft node.
const FactoryNodeID graft.ID = "engine.check.factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(filesystem), nil
		},
	})
}
