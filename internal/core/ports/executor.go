// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/weft/internal/core/domain"
)

// Executor defines the interface for running the external build executor.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run launches one executor subprocess for the given invocation and
	// blocks until it exits. The subprocess's stdout and stderr are
	// appended to the invocation's log files while the portion produced
	// by this invocation is captured into the returned RunResult.
	//
	// A nonzero exit status yields domain.ErrRunFailed with the captured
	// stderr attached as metadata.
	Run(ctx context.Context, inv domain.Invocation) (*domain.RunResult, error)
}
