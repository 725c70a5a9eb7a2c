package dto

// Request DTOs
//
// Fields are pointers so that "required" checks presence in the JSON body,
// not emptiness.

type CreateAppointmentRequest struct {
	PatientName     *string `json:"patient_name" validate:"required"`
	DoctorName      *string `json:"doctor_name" validate:"required"`
	AppointmentDate *string `json:"appointment_date" validate:"required"`
	AppointmentTime *string `json:"appointment_time" validate:"required"`
}

type UpdateAppointmentStateRequest struct {
	State *string `json:"state" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID   string `json:"appointment_id"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	State           string `json:"state"`
}

type CreateAppointmentResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}

type UpdateAppointmentStateResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
	NewState      string `json:"new_state"`
}

type DeleteAppointmentResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}
