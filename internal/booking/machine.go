package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/harborview-health/booking-agent/internal/clinic"
)

// Input is what the patient sent on this turn. Action carries a quick-reply
// value when a button was tapped; Message carries free text.
type Input struct {
	Message string
	Action  string
}

// TemplateKey selects the response copy the formatter renders for an outcome.
type TemplateKey string

const (
	TplWelcome          TemplateKey = "welcome"
	TplPatientType      TemplateKey = "patient_type"
	TplName             TemplateKey = "name"
	TplDOB              TemplateKey = "dob"
	TplPhone            TemplateKey = "phone"
	TplEmail            TemplateKey = "email"
	TplLocation         TemplateKey = "location"
	TplPainLevel        TemplateKey = "pain_level"
	TplSymptoms         TemplateKey = "symptoms"
	TplProcedure        TemplateKey = "procedure"
	TplInsurance        TemplateKey = "insurance"
	TplPolicyHolder     TemplateKey = "policy_holder"
	TplPolicyNumber     TemplateKey = "policy_number"
	TplGroupNumber      TemplateKey = "group_number"
	TplAdditionalInfo   TemplateKey = "additional_info"
	TplTiming           TemplateKey = "timing"
	TplDayOfWeek        TemplateKey = "day_of_week"
	TplTimeOfDay        TemplateKey = "time_of_day"
	TplConfirmation     TemplateKey = "confirmation"
	TplCompletion       TemplateKey = "completion"
	TplAlreadySubmitted TemplateKey = "already_submitted"
	TplNoAvailability   TemplateKey = "no_availability"
)

// Outcome is the full result of one transition: the state and data to return
// to the client, plus everything the formatter needs to render the reply.
type Outcome struct {
	State           State
	Data            Data
	Template        TemplateKey
	Options         []Action
	Vars            map[string]string
	ValidationError string
}

// Quick-reply actions with fixed values.
var (
	patientTypeOptions = []Action{
		{Label: "New Patient", Value: "new_patient"},
		{Label: "Existing Patient", Value: "existing_patient"},
	}
	timingOptions = []Action{
		{Label: "This Week", Value: "timing_this_week"},
		{Label: "Next Week", Value: "timing_next_week"},
	}
	confirmOptions = []Action{
		{Label: "Yes, that's correct", Value: "confirm_booking"},
		{Label: "No, I need to make changes", Value: "edit_booking"},
	}
	callOfficeAction = Action{Label: "Call our office", Value: "call_office"}
	skipOption       = []Action{{Label: "Skip", Value: "skip"}}
)

// Transition drives exactly one step of the booking flow. It is a pure
// function: the input data map is never mutated, and identical inputs always
// produce identical state and data.
func Transition(state State, data Data, biz clinic.BusinessContext, in Input, now time.Time) Outcome {
	data = data.Clone()
	msg := strings.TrimSpace(in.Message)
	action := strings.TrimSpace(in.Action)
	if action == "" {
		action = detectAction(msg)
	}

	switch state {
	case StateInitial:
		// Any first contact starts the flow; the greeting doubles as the
		// patient-type prompt.
		out := promptFor(StatePatientType, data, biz, now)
		out.Template = TplWelcome
		return out

	case StatePatientType:
		lower := strings.ToLower(msg)
		switch {
		case action == "new_patient" || strings.Contains(lower, "new"):
			data[KeyPatientType] = "new"
		case action == "existing_patient" || strings.Contains(lower, "existing"):
			data[KeyPatientType] = "existing"
		default:
			return retry(StatePatientType, data, biz, now,
				"Please let me know whether you're a new patient or an existing patient.")
		}
		return advanceFrom(state, data, biz, now)

	case StateName:
		res := ValidateFullName(msg)
		if !res.OK {
			return retry(state, data, biz, now, res.Reason)
		}
		parts := strings.Fields(res.Value)
		data[KeyFirstName] = parts[0]
		data[KeyLastName] = strings.Join(parts[1:], " ")
		return advanceFrom(state, data, biz, now)

	case StateDOB:
		return collect(state, KeyDateOfBirth, ValidateDOB(msg), data, biz, now)

	case StatePhone:
		return collect(state, KeyPhone, ValidatePhone(msg), data, biz, now)

	case StateEmail:
		return collect(state, KeyEmail, ValidateEmail(msg), data, biz, now)

	case StateLocation:
		opts := locationOptions(biz)
		if len(opts) == 0 {
			// Host sent no locations; fall back to free text.
			res := ValidateFreeText(msg, "Please tell me which location works best for you.")
			return collect(state, KeyLocation, res, data, biz, now)
		}
		opt, found := MatchOption(action, msg, opts)
		if !found {
			if msg == "" && action == "" {
				return promptFor(state, data, biz, now)
			}
			return retry(state, data, biz, now,
				"I don't recognize that location. Please choose one of our locations below.")
		}
		data[KeyLocation] = opt.Label
		return advanceFrom(state, data, biz, now)

	case StatePainLevel:
		return collect(state, KeyPainLevel, ValidatePainLevel(firstNonEmpty(actionInput(action, "pain_"), msg)), data, biz, now)

	case StateSymptoms:
		res := ValidateFreeText(msg, "Could you describe your symptoms? Even a short description helps us prepare for your visit.")
		return collect(state, KeySymptoms, res, data, biz, now)

	case StateProcedure:
		return chooseFromList(state, KeyProcedure, procedureOptions(biz),
			"Please choose one of the treatments we offer.", action, msg, data, biz, now)

	case StateInsurance:
		return chooseFromList(state, KeyInsurance, insuranceOptions(biz),
			"Please choose one of the insurance providers we accept.", action, msg, data, biz, now)

	case StateInsuranceDetails:
		return collectInsuranceDetails(msg, data, biz, now)

	case StateAdditionalInfo:
		// Optional slot: empty input or an explicit skip stores "".
		if action == "skip" {
			data[KeyAdditionalInfo] = ""
		} else {
			data[KeyAdditionalInfo] = msg
		}
		return advanceFrom(state, data, biz, now)

	case StateAppointmentTiming:
		opt, found := MatchOption(action, msg, timingOptions)
		if !found {
			if t, okText := clinic.ParseTiming(msg); okText {
				opt = timingOptions[0]
				if t == clinic.TimingNextWeek {
					opt = timingOptions[1]
				}
				found = true
			}
		}
		if !found {
			if msg == "" && action == "" {
				return promptFor(state, data, biz, now)
			}
			return retry(state, data, biz, now,
				"Please let me know how soon you'd like to come in.")
		}
		timing, _ := clinic.ParseTiming(opt.Value)
		data[KeyAppointmentTiming] = timing.String()
		if len(dayOptions(data, biz, now)) == 0 {
			return noAvailability(state, data, biz, now)
		}
		return advanceFrom(state, data, biz, now)

	case StateDayOfWeek:
		opts := dayOptions(data, biz, now)
		if len(opts) == 0 {
			return noAvailability(StateAppointmentTiming, data, biz, now)
		}
		opt, found := MatchOption(action, msg, opts)
		if !found {
			if msg == "" && action == "" {
				return promptFor(state, data, biz, now)
			}
			return retry(state, data, biz, now,
				"Please pick one of the days we're open.")
		}
		day := titleCase(strings.TrimPrefix(opt.Value, "day_"))
		data[KeyDayOfWeek] = day
		if hours := hoursForDay(data, biz, now, day); hours != "" {
			data[KeyBusinessHours] = hours
		}
		return advanceFrom(state, data, biz, now)

	case StateTimeOfDay:
		opts := timeOptions(data, biz)
		if action == "" {
			action = timeSynonym(msg)
		}
		opt, found := MatchOption(action, msg, opts)
		if !found {
			if msg == "" && action == "" {
				return promptFor(state, data, biz, now)
			}
			return retry(state, data, biz, now,
				"Please choose morning or afternoon.")
		}
		data[KeyTimeOfDay] = strings.TrimPrefix(opt.Value, "time_")
		return advanceFrom(state, data, biz, now)

	case StateConfirmation:
		lower := strings.ToLower(msg)
		switch {
		case action == "confirm_booking" || strings.Contains(lower, "yes") || strings.Contains(lower, "correct"):
			out := Outcome{State: StateSubmitted, Data: data, Template: TplCompletion, Vars: templateVars(data, biz)}
			return out
		case strings.HasPrefix(action, "edit_booking") || strings.Contains(lower, "change") || lower == "no":
			target := editTarget(action)
			return promptFor(target, data, biz, now)
		default:
			return promptFor(StateConfirmation, data, biz, now)
		}

	case StateSubmitted:
		return Outcome{State: StateSubmitted, Data: data, Template: TplAlreadySubmitted, Vars: templateVars(data, biz)}
	}

	// Unreachable for known states; treat like a reset for safety.
	out := promptFor(StatePatientType, data, biz, now)
	out.Template = TplWelcome
	return out
}

// collect is the shared path for single-slot validator states.
func collect(state State, key string, res Result, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	if !res.OK {
		return retry(state, data, biz, now, res.Reason)
	}
	data[key] = res.Value
	return advanceFrom(state, data, biz, now)
}

// chooseFromList is the shared path for enumerated-choice states whose option
// set comes from a static business-context list.
func chooseFromList(state State, key string, opts []Action, reason, action, msg string, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	if len(opts) == 0 {
		res := ValidateFreeText(msg, reason)
		return collect(state, key, res, data, biz, now)
	}
	opt, found := MatchOption(action, msg, opts)
	if !found {
		if msg == "" && action == "" {
			return promptFor(state, data, biz, now)
		}
		return retry(state, data, biz, now, reason)
	}
	data[key] = opt.Label
	return advanceFrom(state, data, biz, now)
}

// collectInsuranceDetails fills the three insurance sub-slots in a fixed
// order without leaving the state until all are present.
func collectInsuranceDetails(msg string, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	switch {
	case !data.Has(KeyPolicyHolder):
		res := ValidateFullName(msg)
		if !res.OK {
			return retry(StateInsuranceDetails, data, biz, now,
				"I need the policy holder's first and last name.")
		}
		data[KeyPolicyHolder] = res.Value
	case !data.Has(KeyPolicyNumber):
		res := ValidatePolicyNumber(msg)
		if !res.OK {
			return retry(StateInsuranceDetails, data, biz, now, res.Reason)
		}
		data[KeyPolicyNumber] = res.Value
	default:
		res := ValidateGroupNumber(msg)
		if !res.OK {
			return retry(StateInsuranceDetails, data, biz, now, res.Reason)
		}
		data[KeyGroupNumber] = res.Value
	}
	if data.Has(KeyPolicyHolder) && data.Has(KeyPolicyNumber) && data.Has(KeyGroupNumber) {
		return advanceFrom(StateInsuranceDetails, data, biz, now)
	}
	return promptFor(StateInsuranceDetails, data, biz, now)
}

// advanceFrom moves to the state after s and renders its prompt.
func advanceFrom(s State, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	return promptFor(s.Next(), data, biz, now)
}

// retry re-renders the current state's prompt with a corrective sentence.
func retry(s State, data Data, biz clinic.BusinessContext, now time.Time, reason string) Outcome {
	out := promptFor(s, data, biz, now)
	out.ValidationError = reason
	return out
}

func noAvailability(s State, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	return Outcome{
		State:    s,
		Data:     data,
		Template: TplNoAvailability,
		Options:  append(append([]Action{}, timingOptions...), callOfficeAction),
		Vars:     templateVars(data, biz),
	}
}

// promptFor builds the prompt outcome for entering state s: its template, its
// option set (computed fresh from business data for dynamic states), and the
// placeholder values the formatter substitutes.
func promptFor(s State, data Data, biz clinic.BusinessContext, now time.Time) Outcome {
	out := Outcome{State: s, Data: data, Vars: templateVars(data, biz)}
	switch s {
	case StateInitial, StatePatientType:
		out.State = StatePatientType
		out.Template = TplPatientType
		out.Options = patientTypeOptions
	case StateName:
		out.Template = TplName
	case StateDOB:
		out.Template = TplDOB
	case StatePhone:
		out.Template = TplPhone
	case StateEmail:
		out.Template = TplEmail
	case StateLocation:
		out.Template = TplLocation
		out.Options = locationOptions(biz)
	case StatePainLevel:
		out.Template = TplPainLevel
		out.Options = painOptions()
	case StateSymptoms:
		out.Template = TplSymptoms
	case StateProcedure:
		out.Template = TplProcedure
		out.Options = procedureOptions(biz)
	case StateInsurance:
		out.Template = TplInsurance
		out.Options = insuranceOptions(biz)
	case StateInsuranceDetails:
		switch {
		case !data.Has(KeyPolicyHolder):
			out.Template = TplPolicyHolder
		case !data.Has(KeyPolicyNumber):
			out.Template = TplPolicyNumber
		default:
			out.Template = TplGroupNumber
		}
	case StateAdditionalInfo:
		out.Template = TplAdditionalInfo
		out.Options = skipOption
	case StateAppointmentTiming:
		out.Template = TplTiming
		out.Options = timingOptions
	case StateDayOfWeek:
		out.Template = TplDayOfWeek
		out.Options = dayOptions(data, biz, now)
	case StateTimeOfDay:
		out.Template = TplTimeOfDay
		out.Options = timeOptions(data, biz)
	case StateConfirmation:
		out.Template = TplConfirmation
		out.Options = confirmOptions
		out.Vars["summary"] = BuildSummary(data)
	case StateSubmitted:
		out.Template = TplCompletion
	}
	return out
}

// templateVars exposes collected slots to the response templates.
func templateVars(data Data, biz clinic.BusinessContext) map[string]string {
	name := strings.TrimSpace(data.Get(KeyFirstName) + " " + data.Get(KeyLastName))
	return map[string]string{
		"patientName": name,
		"location":    data.Get(KeyLocation),
		"day":         data.Get(KeyDayOfWeek),
		"time":        data.Get(KeyTimeOfDay),
		"timing":      data.Get(KeyAppointmentTiming),
		"procedure":   data.Get(KeyProcedure),
		"insurance":   data.Get(KeyInsurance),
		"painLevel":   data.Get(KeyPainLevel),
		"hours":       data.Get(KeyBusinessHours),
		"companyName": biz.CompanyName,
		"agentName":   biz.AgentName,
	}
}

func locationOptions(biz clinic.BusinessContext) []Action {
	names := biz.LocationNames()
	opts := make([]Action, 0, len(names))
	for _, n := range names {
		opts = append(opts, Action{Label: n, Value: Slug("location", n)})
	}
	return opts
}

func procedureOptions(biz clinic.BusinessContext) []Action {
	opts := make([]Action, 0, len(biz.Services))
	for _, s := range biz.Services {
		if s != "" {
			opts = append(opts, Action{Label: s, Value: Slug("procedure", s)})
		}
	}
	return opts
}

func insuranceOptions(biz clinic.BusinessContext) []Action {
	opts := make([]Action, 0, len(biz.InsuranceProviders))
	for _, p := range biz.InsuranceProviders {
		if p != "" {
			opts = append(opts, Action{Label: p, Value: Slug("insurance", p)})
		}
	}
	return opts
}

func painOptions() []Action {
	opts := make([]Action, 0, 10)
	for i := 1; i <= 10; i++ {
		n := strconv.Itoa(i)
		opts = append(opts, Action{Label: n, Value: "pain_" + n})
	}
	return opts
}

// dayOptions resolves the open days for the chosen location and timing. The
// label carries the concrete calendar date so the patient sees what they are
// picking; the value stays a stable weekday slug for lossless round trips.
func dayOptions(data Data, biz clinic.BusinessContext, now time.Time) []Action {
	loc, err := biz.FindLocation(data.Get(KeyLocation))
	if err != nil {
		return nil
	}
	timing, _ := clinic.ParseTiming(data.Get(KeyAppointmentTiming))
	days := clinic.ResolveDays(loc, timing, now)
	opts := make([]Action, 0, len(days))
	for _, d := range days {
		opts = append(opts, Action{
			Label: d.Name + " (" + d.Date.Format("Jan 2") + ")",
			Value: "day_" + strings.ToLower(d.Name),
		})
	}
	return opts
}

func timeOptions(data Data, biz clinic.BusinessContext) []Action {
	loc, err := biz.FindLocation(data.Get(KeyLocation))
	if err != nil {
		return nil
	}
	wd, okDay := parseWeekdayName(data.Get(KeyDayOfWeek))
	if !okDay {
		return nil
	}
	windows := clinic.ResolveHours(loc, wd)
	opts := make([]Action, 0, len(windows))
	for _, w := range windows {
		opts = append(opts, Action{
			Label: w.Label + " (" + w.Hours + ")",
			Value: "time_" + w.Value,
		})
	}
	return opts
}

func hoursForDay(data Data, biz clinic.BusinessContext, now time.Time, day string) string {
	loc, err := biz.FindLocation(data.Get(KeyLocation))
	if err != nil {
		return ""
	}
	timing, _ := clinic.ParseTiming(data.Get(KeyAppointmentTiming))
	for _, d := range clinic.ResolveDays(loc, timing, now) {
		if d.Name == day {
			return d.Hours
		}
	}
	return ""
}

func parseWeekdayName(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	case "sunday":
		return time.Sunday, true
	}
	return time.Sunday, false
}

// detectAction recovers a button value typed or relayed as plain text.
func detectAction(msg string) string {
	lower := strings.ToLower(strings.TrimSpace(msg))
	switch {
	case lower == "":
		return ""
	case strings.Contains(lower, "new patient"), lower == "new_patient":
		return "new_patient"
	case strings.Contains(lower, "existing patient"), lower == "existing_patient":
		return "existing_patient"
	case lower == "skip":
		return "skip"
	}
	for _, prefix := range []string{"location_", "procedure_", "insurance_", "pain_", "timing_", "day_", "time_", "confirm_booking", "edit_booking", "call_office"} {
		if strings.HasPrefix(lower, prefix) {
			return lower
		}
	}
	return ""
}

// timeSynonym maps common time-of-day words onto the button values.
func timeSynonym(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "morning"), strings.Contains(lower, "am"), strings.Contains(lower, "early"):
		return "time_morning"
	case strings.Contains(lower, "afternoon"), strings.Contains(lower, "pm"), strings.Contains(lower, "evening"), strings.Contains(lower, "late"):
		return "time_afternoon"
	}
	return ""
}

// editTarget maps an edit action onto the state to re-collect. A bare
// edit_booking returns to the additional-info step; edit_booking_<state>
// jumps to any earlier state.
func editTarget(action string) State {
	suffix := strings.TrimPrefix(action, "edit_booking")
	suffix = strings.TrimPrefix(suffix, "_")
	if suffix != "" {
		if s, known := ParseState(suffix); known && s.Before(StateConfirmation) {
			return s
		}
	}
	return StateAdditionalInfo
}

func actionInput(action, prefix string) string {
	if strings.HasPrefix(action, prefix) {
		return strings.TrimPrefix(action, prefix)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
