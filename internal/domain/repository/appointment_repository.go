package repository

import (
	"context"

	"go-medical-appointment/internal/domain/entity"
)

// AppointmentRepository is the key-value store collaborator. Every method maps
// onto exactly one store call.
type AppointmentRepository interface {
	// Put writes the full record, overwriting any existing item with the same ID.
	Put(ctx context.Context, appointment *entity.Appointment) error
	// FindByID returns nil, nil when no item exists.
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	// UpdateState sets only the state attribute. Absent items are created with
	// just the ID and state, the way DynamoDB's UpdateItem behaves.
	UpdateState(ctx context.Context, id string, state entity.AppointmentState) error
	// Delete removes the item; deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}
