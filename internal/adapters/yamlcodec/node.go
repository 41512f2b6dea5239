package yamlcodec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/helmvals/internal/core/ports"
)

// NodeID is the unique identifier for the values codec Graft node.
const NodeID graft.ID = "adapter.values_codec"

func init() {
	graft.Register(graft.Node[ports.ValuesCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ValuesCodec, error) {
			return New(), nil
		},
	})
}
