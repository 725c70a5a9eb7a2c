package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// AppointmentIDPrefix is prepended to every generated appointment ID
	AppointmentIDPrefix = "APT-"

	appointmentIDLayout = "20060102150405"
	suffixLength        = 8
)

// AppointmentIDGenerator builds IDs of the form APT-<YYYYMMDDHHMMSS> from the
// current UTC time. Two creates inside the same second get the same ID unless
// the random suffix is enabled.
type AppointmentIDGenerator struct {
	now        func() time.Time
	withSuffix bool
}

func NewAppointmentIDGenerator(withSuffix bool) *AppointmentIDGenerator {
	return &AppointmentIDGenerator{
		now:        time.Now,
		withSuffix: withSuffix,
	}
}

// WithClock replaces the time source; tests use it to pin the timestamp.
func (g *AppointmentIDGenerator) WithClock(now func() time.Time) *AppointmentIDGenerator {
	g.now = now
	return g
}

func (g *AppointmentIDGenerator) Generate() string {
	id := AppointmentIDPrefix + g.now().UTC().Format(appointmentIDLayout)
	if !g.withSuffix {
		return id
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	return id + "-" + suffix
}
