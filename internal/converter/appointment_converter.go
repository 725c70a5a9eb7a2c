package converter

import (
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:   appointment.ID,
		PatientName:     appointment.PatientName,
		DoctorName:      appointment.DoctorName,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		State:           string(appointment.State),
	}
}

// CreateRequestToAppointment builds a new pending appointment from a validated
// create request. Nil fields become empty strings.
func CreateRequestToAppointment(id string, req *dto.CreateAppointmentRequest) *entity.Appointment {
	return &entity.Appointment{
		ID:              id,
		PatientName:     deref(req.PatientName),
		DoctorName:      deref(req.DoctorName),
		AppointmentDate: deref(req.AppointmentDate),
		AppointmentTime: deref(req.AppointmentTime),
		State:           entity.AppointmentStatePending,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
