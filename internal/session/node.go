package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/gnumake" //nolint:depguard // Wired in session node
	"go.trai.ch/weft/internal/adapters/history" //nolint:depguard // Wired in session node
	"go.trai.ch/weft/internal/adapters/logger"  //nolint:depguard // Wired in session node
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
)

// NodeID is the unique identifier for the session Graft node.
const NodeID graft.ID = "session.main"

func init() {
	graft.Register(graft.Node[*Session]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			gnumake.NodeID,
			history.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RunStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(domain.WeftDirName, executor, store, log), nil
		},
	})
}
