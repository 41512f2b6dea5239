// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/helmvals/internal/adapters/config"
	_ "go.trai.ch/helmvals/internal/adapters/fs"
	_ "go.trai.ch/helmvals/internal/adapters/logger"
	_ "go.trai.ch/helmvals/internal/adapters/watcher"
	_ "go.trai.ch/helmvals/internal/adapters/yamlcodec"
	// Register app nodes.
	_ "go.trai.ch/helmvals/internal/app"
)
