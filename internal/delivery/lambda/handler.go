package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"go-medical-appointment/internal/delivery/http/handler"
	"go-medical-appointment/pkg/response"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

const pathParamID = "id"

// Handler adapts API Gateway proxy events onto the appointment dispatcher
type Handler struct {
	appointmentHandler *handler.AppointmentHandler
	log                *logrus.Logger
}

func NewHandler(appointmentHandler *handler.AppointmentHandler, log *logrus.Logger) *Handler {
	return &Handler{
		appointmentHandler: appointmentHandler,
		log:                log,
	}
}

// Handle never returns an error: every failure is already a response, and an
// error here would surface as a 502 from API Gateway.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	entry := h.log.WithFields(logrus.Fields{
		"method":     event.HTTPMethod,
		"path":       event.Path,
		"request_id": event.RequestContext.RequestID,
	})
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		entry = entry.WithField("aws_request_id", lc.AwsRequestID)
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			entry.Errorf("Failed to decode base64 body: %+v", err)
			return h.render(entry, response.InternalServerError()), nil
		}
		body = decoded
	}

	result := h.appointmentHandler.Dispatch(ctx, handler.Request{
		Method:        event.HTTPMethod,
		AppointmentID: event.PathParameters[pathParamID],
		Body:          body,
	})

	resp := h.render(entry, result)
	entry.WithField("status", resp.StatusCode).Info("lambda request")
	return resp, nil
}

func (h *Handler) render(entry *logrus.Entry, result response.Result) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(result.Body)
	if err != nil {
		entry.Errorf("Failed to encode response: %+v", fmt.Errorf("status %d: %w", result.StatusCode, err))
		result = response.InternalServerError()
		payload, _ = json.Marshal(result.Body)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: result.StatusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(payload),
	}
}
