package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/helmvals/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/adapters/yamlcodec" //nolint:depguard // Wired in app layer
	"go.trai.ch/helmvals/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			yamlcodec.NodeID,
			config.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.ValuesCodec](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(fsys, codec, loader, w, log), nil
}
