package booking

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Slot keys stored in booking data. A key is only ever written by the state
// responsible for it, after its validator accepted the value.
const (
	KeyPatientType       = "patientType"
	KeyFirstName         = "firstName"
	KeyLastName          = "lastName"
	KeyDateOfBirth       = "dateOfBirth"
	KeyPhone             = "phone"
	KeyEmail             = "email"
	KeyLocation          = "location"
	KeyPainLevel         = "painLevel"
	KeySymptoms          = "symptoms"
	KeyProcedure         = "procedure"
	KeyInsurance         = "insurance"
	KeyPolicyHolder      = "policyHolder"
	KeyPolicyNumber      = "policyNumber"
	KeyGroupNumber       = "groupNumber"
	KeyAdditionalInfo    = "additionalInfo"
	KeyAppointmentTiming = "appointmentTiming"
	KeyDayOfWeek         = "dayOfWeek"
	KeyTimeOfDay         = "timeOfDay"
	KeyBusinessHours     = "businessHours"
)

// Data is the accumulated slot map. It grows monotonically as states advance
// and is owned by the caller between requests.
type Data map[string]string

// DecodeData parses the wire form of booking data, which may arrive as a JSON
// object, a JSON-encoded string containing an object, or be absent. Malformed
// payloads yield an empty map plus the parse error so the caller can log the
// discrepancy without aborting the conversation.
func DecodeData(raw json.RawMessage) (Data, error) {
	if len(raw) == 0 {
		return Data{}, nil
	}

	// Unwrap a string-encoded payload ("{\"firstName\":\"John\"}").
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return Data{}, nil
		}
		raw = []byte(asString)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Data{}, fmt.Errorf("booking: malformed booking data: %w", err)
	}

	data := make(Data, len(fields))
	for k, v := range fields {
		data[k] = stringify(v)
	}
	return data, nil
}

// stringify flattens the primitive values clients send into strings.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Encode re-serializes the slot map as a JSON string for the wire. Keys are
// emitted in sorted order, so identical data always encodes identically.
func (d Data) Encode() string {
	if d == nil {
		d = Data{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Clone returns an independent copy so a transition never mutates its input.
func (d Data) Clone() Data {
	out := make(Data, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Get returns the value for key, or "" when unset.
func (d Data) Get(key string) string {
	return d[key]
}

// Has reports whether key holds a non-empty value.
func (d Data) Has(key string) bool {
	return d[key] != ""
}
