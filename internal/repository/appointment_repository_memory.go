package repository

import (
	"context"
	"sync"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"
)

type appointmentMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Appointment
}

// NewAppointmentMemoryRepository returns a process-local store with the same
// semantics as the DynamoDB table. Used for local runs and tests.
func NewAppointmentMemoryRepository() domainRepo.AppointmentRepository {
	return &appointmentMemoryRepository{
		items: make(map[string]entity.Appointment),
	}
}

func (r *appointmentMemoryRepository) Put(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[appointment.ID] = *appointment
	return nil
}

func (r *appointmentMemoryRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *appointmentMemoryRepository) UpdateState(ctx context.Context, id string, state entity.AppointmentState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointment, ok := r.items[id]
	if !ok {
		appointment = entity.Appointment{ID: id}
	}
	appointment.State = state
	r.items[id] = appointment
	return nil
}

func (r *appointmentMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
