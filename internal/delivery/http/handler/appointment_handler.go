package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/usecase"
	"go-medical-appointment/pkg/response"
	"go-medical-appointment/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	pathParamID        = "id"
	fieldAppointmentID = "appointment_id"
	fieldState         = "state"

	maxBodyBytes = 1 << 20
)

// Request is the transport-neutral view of an appointment call
type Request struct {
	Method        string
	AppointmentID string
	Body          []byte
}

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	log                *logrus.Logger
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		log:                log,
	}
}

// ServeHTTP adapts a mux request onto Dispatch
func (h *AppointmentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Write(w, h.internalError(r.Method, mux.Vars(r)[pathParamID], fmt.Errorf("read body: %w", err)))
		return
	}

	response.Write(w, h.Dispatch(r.Context(), Request{
		Method:        r.Method,
		AppointmentID: mux.Vars(r)[pathParamID],
		Body:          body,
	}))
}

// Dispatch routes on the method token and maps every outcome, panics
// included, onto a response.Result.
func (h *AppointmentHandler) Dispatch(ctx context.Context, req Request) (result response.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = h.internalError(req.Method, req.AppointmentID, fmt.Errorf("panic: %v", rec))
		}
	}()

	switch req.Method {
	case http.MethodPost:
		return h.createAppointment(ctx, req)
	case http.MethodGet:
		return h.getAppointment(ctx, req)
	case http.MethodPut:
		return h.updateAppointmentState(ctx, req)
	case http.MethodDelete:
		return h.deleteAppointment(ctx, req)
	default:
		return response.MethodNotAllowed()
	}
}

func (h *AppointmentHandler) createAppointment(ctx context.Context, req Request) response.Result {
	var body dto.CreateAppointmentRequest
	if err := decodeBody(req.Body, &body); err != nil {
		return h.internalError(req.Method, "", err)
	}

	if err := h.validator.Validate(&body); err != nil {
		if field, ok := h.validator.FirstMissingField(err); ok {
			return response.MissingField(field)
		}
		return h.internalError(req.Method, "", err)
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(ctx, &body)
	if err != nil {
		return h.internalError(req.Method, "", err)
	}

	return response.OK(dto.CreateAppointmentResponse{
		Message:       "Appointment created successfully",
		AppointmentID: appointment.AppointmentID,
	})
}

func (h *AppointmentHandler) getAppointment(ctx context.Context, req Request) response.Result {
	if req.AppointmentID == "" {
		return response.MissingField(fieldAppointmentID)
	}

	appointment, err := h.appointmentUsecase.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			return response.NotFound("Appointment not found")
		}
		return h.internalError(req.Method, req.AppointmentID, err)
	}

	return response.OK(appointment)
}

func (h *AppointmentHandler) updateAppointmentState(ctx context.Context, req Request) response.Result {
	if req.AppointmentID == "" {
		return response.MissingField(fieldAppointmentID)
	}

	var body dto.UpdateAppointmentStateRequest
	if err := decodeBody(req.Body, &body); err != nil {
		return h.internalError(req.Method, req.AppointmentID, err)
	}
	if err := h.validator.Validate(&body); err != nil {
		if field, ok := h.validator.FirstMissingField(err); ok {
			return response.MissingField(field)
		}
		return h.internalError(req.Method, req.AppointmentID, err)
	}

	newState := *body.State
	err := h.appointmentUsecase.UpdateAppointmentState(ctx, req.AppointmentID, newState)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidState):
			return response.InvalidField(fieldState, newState)
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			return response.NotFound("Appointment not found")
		default:
			return h.internalError(req.Method, req.AppointmentID, err)
		}
	}

	return response.OK(dto.UpdateAppointmentStateResponse{
		Message:       "Appointment state updated successfully",
		AppointmentID: req.AppointmentID,
		NewState:      newState,
	})
}

func (h *AppointmentHandler) deleteAppointment(ctx context.Context, req Request) response.Result {
	if req.AppointmentID == "" {
		return response.MissingField(fieldAppointmentID)
	}

	if err := h.appointmentUsecase.DeleteAppointment(ctx, req.AppointmentID); err != nil {
		return h.internalError(req.Method, req.AppointmentID, err)
	}

	return response.OK(dto.DeleteAppointmentResponse{
		Message:       "Appointment deleted successfully",
		AppointmentID: req.AppointmentID,
	})
}

// internalError logs the cause and returns the generic 500 body
func (h *AppointmentHandler) internalError(method, appointmentID string, err error) response.Result {
	h.log.WithFields(logrus.Fields{
		"method":         method,
		"appointment_id": appointmentID,
	}).Errorf("Appointment request failed: %+v", err)
	return response.InternalServerError()
}

// decodeBody treats an empty body as an empty object, so absent fields are
// reported as missing rather than as malformed JSON.
func decodeBody(body []byte, dst interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
