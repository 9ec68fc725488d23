// Package booking implements the deterministic appointment-booking state
// machine. The whole conversation state travels in the request payload; the
// machine is a pure function of (state, data, context, input) so requests can
// be handled by any worker with no shared memory.
package booking

// State identifies which slot is being collected or which control step is
// active. States advance strictly forward except for an explicit edit action.
type State string

const (
	StateInitial           State = "initial"
	StatePatientType       State = "patient_type_selected"
	StateName              State = "collecting_name"
	StateDOB               State = "collecting_dob"
	StatePhone             State = "collecting_phone"
	StateEmail             State = "collecting_email"
	StateLocation          State = "collecting_location"
	StatePainLevel         State = "collecting_pain_level"
	StateSymptoms          State = "collecting_symptoms"
	StateProcedure         State = "collecting_procedure"
	StateInsurance         State = "collecting_insurance"
	StateInsuranceDetails  State = "collecting_insurance_details"
	StateAdditionalInfo    State = "collecting_additional_info"
	StateAppointmentTiming State = "collecting_appointment_timing"
	StateDayOfWeek         State = "collecting_day_of_week"
	StateTimeOfDay         State = "collecting_time_of_day"
	StateConfirmation      State = "confirmation"
	StateSubmitted         State = "submitted"
)

// stateOrder is the fixed forward sequence of the flow.
var stateOrder = []State{
	StateInitial,
	StatePatientType,
	StateName,
	StateDOB,
	StatePhone,
	StateEmail,
	StateLocation,
	StatePainLevel,
	StateSymptoms,
	StateProcedure,
	StateInsurance,
	StateInsuranceDetails,
	StateAdditionalInfo,
	StateAppointmentTiming,
	StateDayOfWeek,
	StateTimeOfDay,
	StateConfirmation,
	StateSubmitted,
}

var stateIndex = func() map[State]int {
	m := make(map[State]int, len(stateOrder))
	for i, s := range stateOrder {
		m[s] = i
	}
	return m
}()

// ParseState maps an incoming state tag to a known State. Unknown tags reset
// to StateInitial: the server holds no authoritative session, so a corrupted
// client payload degrades to a fresh conversation instead of an error.
func ParseState(raw string) (State, bool) {
	s := State(raw)
	if _, ok := stateIndex[s]; ok {
		return s, true
	}
	return StateInitial, false
}

// Next returns the state that follows s in the fixed sequence. Submitted is
// terminal and returns itself.
func (s State) Next() State {
	i, ok := stateIndex[s]
	if !ok || i == len(stateOrder)-1 {
		return StateSubmitted
	}
	return stateOrder[i+1]
}

// Before reports whether s comes before other in the fixed sequence.
func (s State) Before(other State) bool {
	return stateIndex[s] < stateIndex[other]
}
