package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{name: "first and last", input: "john smith", ok: true, want: "John Smith"},
		{name: "already cased", input: "John Smith", ok: true, want: "John Smith"},
		{name: "extra whitespace", input: "  mary   jane  watson ", ok: true, want: "Mary Jane Watson"},
		{name: "hyphen and apostrophe", input: "anne-marie o'brien", ok: true, want: "Anne-marie O'brien"},
		{name: "single name", input: "John", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "digits", input: "John Smith3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateFullName(tt.input)
			assert.Equal(t, tt.ok, res.OK)
			if tt.ok {
				assert.Equal(t, tt.want, res.Value)
			} else {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestValidateDOB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "standard", input: "12/25/1980", ok: true},
		{name: "single digit month and day", input: "1/5/1999", ok: true},
		{name: "leap day", input: "02/29/2000", ok: true},
		{name: "non leap day", input: "02/29/2001", ok: false},
		{name: "month out of range", input: "13/45/2020", ok: false},
		{name: "day out of range", input: "04/31/1990", ok: false},
		{name: "year too early", input: "06/15/1850", ok: false},
		{name: "wrong separator", input: "1980-12-25", ok: false},
		{name: "free text", input: "december 25th", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, ValidateDOB(tt.input).OK)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{name: "e164", input: "+14075551234", ok: true, want: "+14075551234"},
		{name: "e164 with spaces", input: "+1 407 555 1234", ok: true, want: "+14075551234"},
		{name: "local dashed", input: "407-555-1234", ok: true, want: "+14075551234"},
		{name: "too short", input: "+1407", ok: false},
		{name: "letters", input: "call me", ok: false},
		{name: "bare digits", input: "4075551234", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePhone(tt.input)
			assert.Equal(t, tt.ok, res.OK)
			if tt.ok {
				assert.Equal(t, tt.want, res.Value)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane@example.com").OK)
	assert.True(t, ValidateEmail(" jane.doe+test@sub.example.org ").OK)
	assert.False(t, ValidateEmail("jane@example").OK)
	assert.False(t, ValidateEmail("not an email").OK)
	assert.False(t, ValidateEmail("").OK)
}

func TestValidatePainLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  string
	}{
		{name: "bare digit", input: "7", ok: true, want: "7"},
		{name: "ten", input: "10", ok: true, want: "10"},
		{name: "embedded in sentence", input: "it's about a 6 today", ok: true, want: "6"},
		{name: "button suffix", input: "3", ok: true, want: "3"},
		{name: "zero", input: "0", ok: false},
		{name: "eleven", input: "11", ok: false},
		{name: "no number", input: "pretty bad", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePainLevel(tt.input)
			assert.Equal(t, tt.ok, res.OK)
			if tt.ok {
				assert.Equal(t, tt.want, res.Value)
			}
		})
	}
}

func TestValidatePolicyAndGroupNumber(t *testing.T) {
	assert.True(t, ValidatePolicyNumber("ABC-123456").OK)
	assert.False(t, ValidatePolicyNumber("12345").OK)
	assert.False(t, ValidatePolicyNumber("has spaces 123").OK)

	assert.True(t, ValidateGroupNumber("GRP 4512").OK)
	assert.True(t, ValidateGroupNumber("100").OK)
	assert.False(t, ValidateGroupNumber("ab").OK)
}

func TestMatchOption(t *testing.T) {
	options := []Action{
		{Label: "Old Bridge", Value: "location_old_bridge"},
		{Label: "Freehold", Value: "location_freehold"},
	}

	tests := []struct {
		name    string
		action  string
		message string
		want    string
		found   bool
	}{
		{name: "action exact", action: "location_freehold", want: "Freehold", found: true},
		{name: "action wins over message", action: "location_old_bridge", message: "freehold", want: "Old Bridge", found: true},
		{name: "message equals label", message: "old bridge", want: "Old Bridge", found: true},
		{name: "message equals value", message: "location_freehold", want: "Freehold", found: true},
		{name: "partial match", message: "bridge", want: "Old Bridge", found: true},
		{name: "typo within distance", message: "freehodl", want: "Freehold", found: true},
		{name: "too short for fuzzy", message: "ol", found: false},
		{name: "no match", message: "somewhere else entirely", found: false},
		{name: "empty", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, found := MatchOption(tt.action, tt.message, options)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, opt.Label)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("same", "same"))
	assert.Equal(t, 1, levenshtein("kitten", "mitten"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 4, levenshtein("", "four"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "location_old_bridge", Slug("location", "Old Bridge"))
	assert.Equal(t, "procedure_deep_tissue_massage", Slug("procedure", "Deep Tissue  Massage"))
	assert.Equal(t, "insurance_blue_cross_blue_shield", Slug("insurance", "Blue Cross / Blue Shield"))
	assert.Equal(t, "procedure_botox", Slug("procedure", "Botox!"))
}
