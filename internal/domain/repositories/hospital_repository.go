package repositories

import (
	"context"

	"github.com/medroute/hospital-finder/internal/domain/entities"
)

// HospitalRepository defines the interface for hospital data operations.
//
// GetAll applies the priority pre-filter that the ranking engine relies on:
// critical restricts to hospitals with emergency services open around the
// clock, urgent restricts to hospitals with emergency services, and normal
// returns every active hospital. The ranking engine itself does not
// re-check these flags.
type HospitalRepository interface {
	// GetAll retrieves active hospitals eligible for the given priority
	GetAll(ctx context.Context, priority entities.Priority) ([]*entities.Hospital, error)

	// GetByID retrieves a hospital by ID
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)

	// Create persists a new hospital
	Create(ctx context.Context, hospital *entities.Hospital) error
}
