package usecase

import (
	"context"
	"errors"

	"go-medical-appointment/config"
	"go-medical-appointment/internal/converter"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
	"go-medical-appointment/internal/domain/repository"
	"go-medical-appointment/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidState        = errors.New("invalid appointment state")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	UpdateAppointmentState(ctx context.Context, id string, state string) error
	DeleteAppointment(ctx context.Context, id string) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	idGenerator     *service.AppointmentIDGenerator
	policy          config.AppointmentConfig
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	idGenerator *service.AppointmentIDGenerator,
	policy config.AppointmentConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		idGenerator:     idGenerator,
		policy:          policy,
	}
}

// CreateAppointment writes a new pending appointment. The put is unconditional,
// so an ID collision overwrites the earlier record.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment := converter.CreateRequestToAppointment(u.idGenerator.Generate(), req)

	if err := u.appointmentRepo.Put(ctx, appointment); err != nil {
		u.log.Warnf("Failed to save appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s", appointment.ID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointmentState sets only the state attribute.
//
// With the default policy any string is stored and the ID is not checked, which
// can leave a partial record behind. ValidateState restricts the value to the
// lifecycle states; RequireExisting reads the record first and reports
// ErrAppointmentNotFound. The read and the write are separate store calls.
func (u *appointmentUsecase) UpdateAppointmentState(ctx context.Context, id string, state string) error {
	newState := entity.AppointmentState(state)
	if u.policy.ValidateState && !newState.IsValid() {
		return ErrInvalidState
	}

	if u.policy.RequireExisting {
		existing, err := u.appointmentRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", id, err)
			return err
		}
		if existing == nil {
			return ErrAppointmentNotFound
		}
	}

	if err := u.appointmentRepo.UpdateState(ctx, id, newState); err != nil {
		u.log.Warnf("Failed to update appointment %s state: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment state updated: id=%s, state=%s", id, state)
	return nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}
