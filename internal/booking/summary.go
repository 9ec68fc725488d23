package booking

import "strings"

// summarySection groups related slots for the confirmation summary.
type summarySection struct {
	title string
	rows  []summaryRow
}

type summaryRow struct {
	label string
	key   string
}

var summaryLayout = []summarySection{
	{"Personal Information", []summaryRow{
		{"Name", ""}, // composed from first + last
		{"Date of Birth", KeyDateOfBirth},
	}},
	{"Contact Details", []summaryRow{
		{"Phone", KeyPhone},
		{"Email", KeyEmail},
	}},
	{"Appointment Preferences", []summaryRow{
		{"Preferred Location", KeyLocation},
		{"Preferred Timing", KeyAppointmentTiming},
		{"Preferred Day", KeyDayOfWeek},
		{"Preferred Time", KeyTimeOfDay},
		{"Business Hours", KeyBusinessHours},
	}},
	{"Medical Information", []summaryRow{
		{"Pain Level", KeyPainLevel},
		{"Symptoms", KeySymptoms},
		{"Procedure/Treatment", KeyProcedure},
	}},
	{"Insurance Information", []summaryRow{
		{"Insurance Provider", KeyInsurance},
		{"Policy Holder", KeyPolicyHolder},
		{"Policy Number", KeyPolicyNumber},
		{"Group Number", KeyGroupNumber},
	}},
}

// BuildSummary renders the grouped recap shown before confirmation. Slots
// that are missing or blank are flagged as "Not provided" instead of being
// silently omitted.
func BuildSummary(data Data) string {
	var b strings.Builder
	b.WriteString("Here's what I have:")

	for _, section := range summaryLayout {
		b.WriteString("\n\n**" + section.title + "**")
		for _, row := range section.rows {
			value := data.Get(row.key)
			if row.label == "Name" {
				value = strings.TrimSpace(data.Get(KeyFirstName) + " " + data.Get(KeyLastName))
			}
			if value == "" {
				b.WriteString("\n• " + row.label + ": Not provided")
				continue
			}
			b.WriteString("\n• " + row.label + ": " + value)
		}
	}

	b.WriteString("\n\n**Additional Information**")
	if info := data.Get(KeyAdditionalInfo); info != "" {
		b.WriteString("\n• " + info)
	} else {
		b.WriteString("\n• No additional information provided")
	}

	b.WriteString("\n\nIs this information correct?")
	return b.String()
}
