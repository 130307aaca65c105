// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/weft/internal/adapters/config"
	_ "go.trai.ch/weft/internal/adapters/gnumake"
	_ "go.trai.ch/weft/internal/adapters/history"
	_ "go.trai.ch/weft/internal/adapters/logger"
	// Register session and app nodes.
	_ "go.trai.ch/weft/internal/app"
	_ "go.trai.ch/weft/internal/session"
)
