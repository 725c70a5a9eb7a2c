package repository

import (
	"context"
	"fmt"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// Hash field names mirror the DynamoDB attribute names.
const (
	fieldAppointmentID   = "appointment_id"
	fieldPatientName     = "patient_name"
	fieldDoctorName      = "doctor_name"
	fieldAppointmentDate = "appointment_date"
	fieldAppointmentTime = "appointment_time"
	fieldState           = "state"
)

// appointmentRedisRepository stores each appointment as a hash under
// <prefix><appointment_id>.
type appointmentRedisRepository struct {
	client    *redis.Client
	keyPrefix string
}

func NewAppointmentRedisRepository(client *redis.Client, keyPrefix string) domainRepo.AppointmentRepository {
	return &appointmentRedisRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *appointmentRedisRepository) key(id string) string {
	return r.keyPrefix + id
}

// Put replaces the whole hash inside MULTI/EXEC so stale fields never survive
// an overwrite.
func (r *appointmentRedisRepository) Put(ctx context.Context, appointment *entity.Appointment) error {
	key := r.key(appointment.ID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		fieldAppointmentID:   appointment.ID,
		fieldPatientName:     appointment.PatientName,
		fieldDoctorName:      appointment.DoctorName,
		fieldAppointmentDate: appointment.AppointmentDate,
		fieldAppointmentTime: appointment.AppointmentTime,
		fieldState:           string(appointment.State),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (r *appointmentRedisRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get appointment %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	return &entity.Appointment{
		ID:              id,
		PatientName:     fields[fieldPatientName],
		DoctorName:      fields[fieldDoctorName],
		AppointmentDate: fields[fieldAppointmentDate],
		AppointmentTime: fields[fieldAppointmentTime],
		State:           entity.AppointmentState(fields[fieldState]),
	}, nil
}

// UpdateState sets the state field and the key field; HSET creates the hash
// when it does not exist yet.
func (r *appointmentRedisRepository) UpdateState(ctx context.Context, id string, state entity.AppointmentState) error {
	err := r.client.HSet(ctx, r.key(id),
		fieldAppointmentID, id,
		fieldState, string(state),
	).Err()
	if err != nil {
		return fmt.Errorf("update appointment %s state: %w", id, err)
	}
	return nil
}

func (r *appointmentRedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}
