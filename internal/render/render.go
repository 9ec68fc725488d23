// Package render turns a transition outcome into the patient-facing reply:
// it picks a phrasing variation, substitutes placeholders, and carries the
// quick-reply actions through.
package render

import (
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/harborview-health/booking-agent/internal/booking"
)

// Rendered is the formatted reply for one turn.
type Rendered struct {
	Text    string
	Actions []booking.Action
}

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z]+\}`)

// Format renders the outcome of a transition. Variation choice is a
// deterministic hash of the template key and the collected data, so replaying
// the same request yields the same reply.
func Format(out booking.Outcome) Rendered {
	variants := templates[out.Template]
	if len(variants) == 0 {
		variants = templates[booking.TplPatientType]
	}
	text := variants[pick(out, len(variants))]
	text = substitute(text, out.Vars)

	if out.ValidationError != "" {
		text = out.ValidationError + " " + text
	}

	actions := out.Options
	if actions == nil {
		actions = []booking.Action{}
	}
	return Rendered{Text: text, Actions: actions}
}

func pick(out booking.Outcome, n int) int {
	h := fnv.New32a()
	h.Write([]byte(out.Template))
	h.Write([]byte(out.Data.Encode()))
	return int(h.Sum32() % uint32(n))
}

// substitute replaces {placeholder} tokens from vars. The company and agent
// names have neutral fallbacks for hosts that omit them; any other empty or
// unknown placeholder is stripped so raw tokens never reach the patient.
func substitute(text string, vars map[string]string) string {
	resolved := placeholderRe.ReplaceAllStringFunc(text, func(tok string) string {
		key := tok[1 : len(tok)-1]
		if v, present := vars[key]; present && v != "" {
			return v
		}
		switch key {
		case "companyName":
			return "our team"
		case "agentName":
			return "your assistant"
		}
		return ""
	})
	return tidy(resolved)
}

// tidy cleans up the artifacts a stripped placeholder leaves behind, like
// "Thank you, !" or doubled spaces.
func tidy(text string) string {
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(text, ", !", "!")
	text = strings.ReplaceAll(text, ", .", ".")
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return strings.TrimSpace(text)
}
