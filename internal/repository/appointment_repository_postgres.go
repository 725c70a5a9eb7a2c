package repository

import (
	"context"
	"errors"
	"fmt"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentPostgresRepository struct {
	db *gorm.DB
}

func NewAppointmentPostgresRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentPostgresRepository{db: db}
}

func (r *appointmentPostgresRepository) Put(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(appointment).Error
	if err != nil {
		return fmt.Errorf("put appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("appointment_id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	return &appointment, nil
}

// UpdateState upserts a row holding only the key and state; on conflict just
// the state column is overwritten.
func (r *appointmentPostgresRepository) UpdateState(ctx context.Context, id string, state entity.AppointmentState) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state"}),
		}).
		Create(&entity.Appointment{ID: id, State: state}).Error
	if err != nil {
		return fmt.Errorf("update appointment %s state: %w", id, err)
	}
	return nil
}

func (r *appointmentPostgresRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("appointment_id = ?", id).Delete(&entity.Appointment{}).Error
	if err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}
