package handlers

import "encoding/json"

// webhookEnvelope is the nested payload some hosts wrap the turn fields in.
type webhookEnvelope struct {
	Message      string          `json:"message"`
	Action       string          `json:"action"`
	BookingState string          `json:"bookingState"`
	BookingData  json.RawMessage `json:"bookingData"`
}

// Each turn field resolves through the same ordered rules: the top-level
// field wins, then the webhookData envelope, then the default. The order is
// fixed here rather than scattered through the handler so adding a source
// means adding one line.

func extractMessage(req webhookRequest) string {
	if req.Message != "" {
		return req.Message
	}
	if req.WebhookData != nil {
		return req.WebhookData.Message
	}
	return ""
}

func extractAction(req webhookRequest) string {
	if req.Action != "" {
		return req.Action
	}
	if req.WebhookData != nil {
		return req.WebhookData.Action
	}
	return ""
}

func extractState(req webhookRequest) string {
	if req.BookingState != "" {
		return req.BookingState
	}
	if req.WebhookData != nil && req.WebhookData.BookingState != "" {
		return req.WebhookData.BookingState
	}
	return ""
}

func extractData(req webhookRequest) json.RawMessage {
	if len(req.BookingData) > 0 && string(req.BookingData) != "null" {
		return req.BookingData
	}
	if req.WebhookData != nil {
		return req.WebhookData.BookingData
	}
	return nil
}
