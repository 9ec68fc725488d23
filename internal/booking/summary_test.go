package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryComplete(t *testing.T) {
	data := Data{
		KeyFirstName:         "John",
		KeyLastName:          "Smith",
		KeyDateOfBirth:       "12/25/1980",
		KeyPhone:             "+14075551234",
		KeyEmail:             "john@example.com",
		KeyLocation:          "Old Bridge",
		KeyAppointmentTiming: "this week",
		KeyDayOfWeek:         "Monday",
		KeyTimeOfDay:         "morning",
		KeyBusinessHours:     "8:00 AM - 5:00 PM",
		KeyPainLevel:         "7",
		KeySymptoms:          "lower back pain",
		KeyProcedure:         "Chiropractic Adjustment",
		KeyInsurance:         "Aetna",
		KeyPolicyHolder:      "John Smith",
		KeyPolicyNumber:      "POL-884213",
		KeyGroupNumber:       "GRP 1200",
		KeyAdditionalInfo:    "referral from Dr. Patel",
	}

	summary := BuildSummary(data)

	assert.Contains(t, summary, "Name: John Smith")
	assert.Contains(t, summary, "Date of Birth: 12/25/1980")
	assert.Contains(t, summary, "Preferred Location: Old Bridge")
	assert.Contains(t, summary, "Business Hours: 8:00 AM - 5:00 PM")
	assert.Contains(t, summary, "Insurance Provider: Aetna")
	assert.Contains(t, summary, "referral from Dr. Patel")
	assert.Contains(t, summary, "Is this information correct?")
	assert.NotContains(t, summary, "Not provided")
}

func TestBuildSummaryFlagsMissingSlots(t *testing.T) {
	data := Data{KeyFirstName: "Jane", KeyLastName: "Doe"}

	summary := BuildSummary(data)

	assert.Contains(t, summary, "Name: Jane Doe")
	assert.Contains(t, summary, "Phone: Not provided")
	assert.Contains(t, summary, "Insurance Provider: Not provided")
	assert.Contains(t, summary, "No additional information provided")
}

func TestBuildSummarySectionOrder(t *testing.T) {
	summary := BuildSummary(Data{})

	personal := strings.Index(summary, "Personal Information")
	contact := strings.Index(summary, "Contact Details")
	insurance := strings.Index(summary, "Insurance Information")
	assert.True(t, personal >= 0 && personal < contact && contact < insurance)
}
