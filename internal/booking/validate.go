package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// Action is a quick-reply button. Value is the literal string the client
// resends as the action on the next call.
type Action struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is the outcome of validating one slot value. Validation failures are
// conversation content, not errors: Reason is the corrective sentence shown
// to the patient before the prompt repeats.
type Result struct {
	OK     bool
	Value  string // normalized value, set when OK
	Reason string // expected-format hint, set when !OK
}

func ok(value string) Result    { return Result{OK: true, Value: value} }
func fail(reason string) Result { return Result{Reason: reason} }

var (
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	dobRe        = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	e164Re       = regexp.MustCompile(`^\+[0-9]{10,15}$`)
	localPhoneRe = regexp.MustCompile(`^([0-9]{3})-([0-9]{3})-([0-9]{4})$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	policyRe     = regexp.MustCompile(`^[A-Za-z0-9-]{6,}$`)
	groupRe      = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,/#]{3,}$`)
	digitsRe     = regexp.MustCompile(`\d+`)
)

// ValidateFullName requires at least a first and last name and normalizes
// each token to title case.
func ValidateFullName(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fail("I need your first name and last name.")
	}
	if !nameRe.MatchString(trimmed) {
		return fail("Please use only letters, spaces, hyphens, and apostrophes in your name.")
	}
	parts := strings.Fields(trimmed)
	if len(parts) < 2 {
		return fail("I need both your first name and last name.")
	}
	for i, p := range parts {
		parts[i] = titleCase(p)
	}
	return ok(strings.Join(parts, " "))
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// ValidateDOB accepts MM/DD/YYYY and rejects impossible calendar dates.
func ValidateDOB(input string) Result {
	trimmed := strings.TrimSpace(input)
	m := dobRe.FindStringSubmatch(trimmed)
	if m == nil {
		return fail("Please enter your date of birth in MM/DD/YYYY format (e.g., 12/25/1980).")
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > daysIn(month, year) || year < 1900 || year > 2099 {
		return fail("That doesn't look like a real date. Please enter your date of birth as MM/DD/YYYY.")
	}
	return ok(trimmed)
}

func daysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// ValidatePhone accepts E.164 (+ followed by 10-15 digits) or a local
// NNN-NNN-NNNN number. Local numbers are canonicalized to +1 plus digits.
func ValidatePhone(input string) Result {
	trimmed := strings.ReplaceAll(strings.TrimSpace(input), " ", "")
	if e164Re.MatchString(trimmed) {
		return ok(trimmed)
	}
	if m := localPhoneRe.FindStringSubmatch(trimmed); m != nil {
		return ok("+1" + m[1] + m[2] + m[3])
	}
	return fail("Please enter a valid phone number, like +14071234567 or 407-123-4567.")
}

// ValidateEmail performs a standard local@domain syntax check.
func ValidateEmail(input string) Result {
	trimmed := strings.TrimSpace(input)
	if !emailRe.MatchString(trimmed) || len(trimmed) > 254 {
		return fail("Please enter a valid email address, like example@domain.com.")
	}
	return ok(trimmed)
}

// ValidateFreeText accepts anything non-empty after trimming.
func ValidateFreeText(input, reason string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fail(reason)
	}
	return ok(trimmed)
}

// ValidatePolicyNumber requires at least 6 alphanumeric/hyphen characters.
func ValidatePolicyNumber(input string) Result {
	trimmed := strings.TrimSpace(input)
	if !policyRe.MatchString(trimmed) {
		return fail("Please enter your policy number: at least 6 characters, letters and numbers only.")
	}
	return ok(trimmed)
}

// ValidateGroupNumber allows alphanumerics plus a small punctuation set.
func ValidateGroupNumber(input string) Result {
	trimmed := strings.TrimSpace(input)
	if !groupRe.MatchString(trimmed) {
		return fail("Please enter your group number: letters, numbers, or a mix, at least 3 characters.")
	}
	return ok(trimmed)
}

// ValidatePainLevel accepts a number from 1 to 10 anywhere in the input, so
// both the "pain_7" button and "it's about a 7" work.
func ValidatePainLevel(input string) Result {
	for _, m := range digitsRe.FindAllString(input, -1) {
		if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 10 {
			return ok(strconv.Itoa(n))
		}
	}
	return fail("Please rate how you're feeling with a number from 1 to 10.")
}

// MatchOption resolves the patient's input against an enumerated option set.
// The action value wins when present; otherwise the message is matched
// case-insensitively against each option's value and label, with a small
// typo tolerance on labels.
func MatchOption(action, message string, options []Action) (Action, bool) {
	if a := strings.ToLower(strings.TrimSpace(action)); a != "" {
		for _, opt := range options {
			if strings.ToLower(opt.Value) == a {
				return opt, true
			}
		}
	}
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return Action{}, false
	}
	for _, opt := range options {
		if strings.ToLower(opt.Value) == msg || strings.ToLower(opt.Label) == msg {
			return opt, true
		}
	}
	// Partial and fuzzy matching only kick in once the input is substantial
	// enough not to match everything.
	if len(msg) < 3 {
		return Action{}, false
	}
	for _, opt := range options {
		label := strings.ToLower(opt.Label)
		if strings.Contains(label, msg) || strings.Contains(msg, label) {
			return opt, true
		}
	}
	for _, opt := range options {
		if levenshtein(strings.ToLower(opt.Label), msg) <= 2 {
			return opt, true
		}
	}
	return Action{}, false
}

// levenshtein is the edit distance used for typo-tolerant option matching.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Slug converts an option label into the value suffix used by quick replies:
// "Old Bridge" with prefix "location" becomes "location_old_bridge".
func Slug(prefix, label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return prefix + "_" + strings.TrimSuffix(b.String(), "_")
}
