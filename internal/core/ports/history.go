package ports

import "go.trai.ch/weft/internal/core/domain"

// RunStore defines the interface for persisting run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type RunStore interface {
	// Get retrieves the last run record for a target.
	// Returns nil, nil if the target has never been run.
	Get(root, target string) (*domain.RunRecord, error)

	// Put stores the run record, replacing any previous one for the
	// same target.
	Put(root string, record domain.RunRecord) error
}
