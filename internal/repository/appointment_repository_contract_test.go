package repository

import (
	"context"
	"testing"

	"go-medical-appointment/internal/domain/entity"
	domainRepo "go-medical-appointment/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointment(id string) *entity.Appointment {
	return &entity.Appointment{
		ID:              id,
		PatientName:     "A",
		DoctorName:      "B",
		AppointmentDate: "2026-02-16",
		AppointmentTime: "09:00",
		State:           entity.AppointmentStatePending,
	}
}

// testAppointmentRepository runs the behaviour every store backend must share.
func testAppointmentRepository(t *testing.T, repo domainRepo.AppointmentRepository) {
	ctx := context.Background()

	t.Run("put then find returns the record", func(t *testing.T) {
		want := newTestAppointment("APT-20260216090000")
		require.NoError(t, repo.Put(ctx, want))

		got, err := repo.FindByID(ctx, want.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *want, *got)
	})

	t.Run("find absent id returns nil", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "APT-19990101000000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put overwrites the whole item", func(t *testing.T) {
		first := newTestAppointment("APT-20260216090001")
		require.NoError(t, repo.Put(ctx, first))

		second := newTestAppointment(first.ID)
		second.PatientName = "C"
		second.State = entity.AppointmentStateConfirmed
		require.NoError(t, repo.Put(ctx, second))

		got, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *second, *got)
	})

	t.Run("update state leaves other fields untouched", func(t *testing.T) {
		original := newTestAppointment("APT-20260216090002")
		require.NoError(t, repo.Put(ctx, original))

		require.NoError(t, repo.UpdateState(ctx, original.ID, entity.AppointmentStateConfirmed))

		got, err := repo.FindByID(ctx, original.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		want := *original
		want.State = entity.AppointmentStateConfirmed
		assert.Equal(t, want, *got)
	})

	t.Run("update state on absent id creates a partial item", func(t *testing.T) {
		id := "APT-20260216090003"
		require.NoError(t, repo.UpdateState(ctx, id, "rescheduled"))

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entity.Appointment{ID: id, State: "rescheduled"}, *got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		appointment := newTestAppointment("APT-20260216090004")
		require.NoError(t, repo.Put(ctx, appointment))

		require.NoError(t, repo.Delete(ctx, appointment.ID))
		require.NoError(t, repo.Delete(ctx, appointment.ID))

		got, err := repo.FindByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
