// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/carry/internal/adapters/archive"
	_ "go.trai.ch/carry/internal/adapters/config"
	_ "go.trai.ch/carry/internal/adapters/detector"
	_ "go.trai.ch/carry/internal/adapters/fs"
	_ "go.trai.ch/carry/internal/adapters/logger"
	_ "go.trai.ch/carry/internal/adapters/progress"
	_ "go.trai.ch/carry/internal/adapters/shell"
	_ "go.trai.ch/carry/internal/adapters/state"
	_ "go.trai.ch/carry/internal/adapters/transfer"
	// Register app nodes.
	_ "go.trai.ch/carry/internal/app"
)
