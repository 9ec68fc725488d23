// Package handlers exposes the booking conversation over HTTP. The service
// holds no conversation state: every request carries the full state and data,
// and every response returns them for the client to echo back.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/harborview-health/booking-agent/internal/booking"
	"github.com/harborview-health/booking-agent/internal/clinic"
	"github.com/harborview-health/booking-agent/internal/observability/metrics"
	"github.com/harborview-health/booking-agent/internal/render"
	"github.com/harborview-health/booking-agent/pkg/logging"
)

// webhookRequest is the inbound turn payload. Turn fields may appear at the
// top level or inside webhookData; business context is always top level.
type webhookRequest struct {
	Message      string           `json:"message"`
	Action       string           `json:"action"`
	BookingState string           `json:"bookingState"`
	BookingData  json.RawMessage  `json:"bookingData"`
	WebhookData  *webhookEnvelope `json:"webhookData,omitempty"`

	CompanyName        string            `json:"company_name"`
	AgentName          string            `json:"agent_name"`
	Industry           string            `json:"industry"`
	Category           string            `json:"category"`
	Locations          []clinic.Location `json:"locations"`
	InsuranceProviders []string          `json:"insurance_providers"`
	Services           []string          `json:"services"`
}

// webhookResponse returns the advanced state plus the data as a JSON string,
// ready to be echoed on the next turn. Message duplicates AgentResponse for
// clients that read the reply from either field.
type webhookResponse struct {
	AgentResponse    string           `json:"agent_response"`
	Message          string           `json:"message"`
	BookingState     string           `json:"bookingState"`
	BookingData      string           `json:"bookingData"`
	SuggestedActions []booking.Action `json:"suggestedActions"`
}

// BookingHandler processes one conversation turn per request.
type BookingHandler struct {
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
	now     func() time.Time
}

// NewBookingHandler creates the webhook handler. A nil metrics value disables
// instrumentation.
func NewBookingHandler(logger *logging.Logger, m *metrics.BookingMetrics) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingHandler{
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// Handle implements POST /webhooks/booking.
func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("rejected booking webhook", "error", err)
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	rawState := extractState(req)
	state, known := booking.ParseState(rawState)
	if !known && rawState != "" {
		h.logger.Warn("unknown booking state, resetting conversation", "state", rawState)
	}

	data, err := booking.DecodeData(extractData(req))
	if err != nil {
		h.logger.Warn("malformed booking data, starting with empty slots", "error", err)
	}

	biz := clinic.BusinessContext{
		CompanyName:        req.CompanyName,
		AgentName:          req.AgentName,
		Industry:           req.Industry,
		Category:           req.Category,
		Locations:          req.Locations,
		InsuranceProviders: req.InsuranceProviders,
		Services:           req.Services,
	}
	in := booking.Input{
		Message: extractMessage(req),
		Action:  extractAction(req),
	}

	out := booking.Transition(state, data, biz, in, h.now())

	h.metrics.ObserveTransition(string(state), string(out.State))
	if out.ValidationError != "" {
		h.metrics.ObserveValidationFailure(string(state))
	}

	reply := render.Format(out)
	resp := webhookResponse{
		AgentResponse:    reply.Text,
		Message:          reply.Text,
		BookingState:     string(out.State),
		BookingData:      out.Data.Encode(),
		SuggestedActions: reply.Actions,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode booking response", "error", err)
	}

	h.metrics.ObserveWebhookLatency(time.Since(start).Seconds())
	h.logger.Info("booking turn processed",
		"from_state", string(state),
		"to_state", string(out.State),
		"validation_failed", out.ValidationError != "",
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
