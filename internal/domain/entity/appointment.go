package entity

// AppointmentState represents the lifecycle status of an appointment
type AppointmentState string

const (
	AppointmentStatePending   AppointmentState = "pending"
	AppointmentStateConfirmed AppointmentState = "confirmed"
	AppointmentStateCancelled AppointmentState = "cancelled"
)

// IsValid reports whether the state is one of the known lifecycle values
func (s AppointmentState) IsValid() bool {
	switch s {
	case AppointmentStatePending, AppointmentStateConfirmed, AppointmentStateCancelled:
		return true
	}
	return false
}

// Appointment is the single record kept by the store, keyed by ID.
// Only State changes after creation.
type Appointment struct {
	ID              string           `gorm:"column:appointment_id;type:varchar(64);primaryKey" dynamodbav:"appointment_id" json:"appointment_id"`
	PatientName     string           `gorm:"column:patient_name;not null" dynamodbav:"patient_name" json:"patient_name"`
	DoctorName      string           `gorm:"column:doctor_name;not null" dynamodbav:"doctor_name" json:"doctor_name"`
	AppointmentDate string           `gorm:"column:appointment_date;not null" dynamodbav:"appointment_date" json:"appointment_date"`
	AppointmentTime string           `gorm:"column:appointment_time;not null" dynamodbav:"appointment_time" json:"appointment_time"`
	State           AppointmentState `gorm:"column:state;type:varchar(32);not null;index" dynamodbav:"state" json:"state"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if appointment is in pending state
func (a *Appointment) IsPending() bool {
	return a.State == AppointmentStatePending
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.State == AppointmentStateConfirmed
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.State == AppointmentStateCancelled
}
