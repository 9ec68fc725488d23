package render

import "github.com/harborview-health/booking-agent/internal/booking"

// templates holds the phrasing variations for every template key. The copy
// uses {placeholder} tokens substituted from the outcome vars and the
// business context.
var templates = map[booking.TemplateKey][]string{
	booking.TplWelcome: {
		"Hi there! I'm {agentName} from {companyName}. I'm here to help you get scheduled. Are you a new patient or have you been here before?",
		"Welcome! I'm {agentName} from {companyName}. I'd love to help you schedule your appointment. Are you a new patient or an existing patient?",
		"Hello! I'm {agentName} from {companyName}. I'm here to assist you with scheduling. Are you a new patient or have you visited us before?",
	},
	booking.TplPatientType: {
		"Are you a new patient or an existing patient?",
		"To get started, are you a new patient or have you been here before?",
	},
	booking.TplName: {
		"Could you please share your first name and last name? This helps us create your appointment properly.",
		"Great! I'd love to get your first name and last name so we can set up your appointment correctly.",
		"Could you please provide your first name and last name? This helps us prepare for your visit.",
	},
	booking.TplDOB: {
		"Thank you, {patientName}! Could you please share your date of birth? (Example: MM/DD/YYYY)",
		"Perfect! Could you provide your date of birth in MM/DD/YYYY format so we have everything ready for your visit?",
		"Thanks! What's your date of birth? (Example: MM/DD/YYYY)",
	},
	booking.TplPhone: {
		"Could you please share your phone number? (Example: +14071234567) This helps us reach you if we need to confirm anything.",
		"Thank you! What's the best phone number to reach you at? (Example: 407-123-4567)",
	},
	booking.TplEmail: {
		"And could you please share your email address? This helps us send you appointment confirmations.",
		"Great! What email address should we use for your appointment details?",
	},
	booking.TplLocation: {
		"Which of our locations would be most convenient for you?",
		"Which of our locations would work best for you? We want to make your visit as convenient as possible.",
	},
	booking.TplPainLevel: {
		"{location} is a great choice. To help us provide the best care, could you tell me how you're feeling on a scale of 1 to 10?",
		"Great choice with {location}! To help us prepare for your visit, how are you feeling on a scale of 1 to 10?",
	},
	booking.TplSymptoms: {
		"Thank you. Could you describe your symptoms in a few words? For example: back pain, stiffness, numbness. This helps us prepare for your visit.",
		"I appreciate you sharing that. Could you briefly describe your symptoms so we can provide the right care?",
	},
	booking.TplProcedure: {
		"What procedure or treatment are you interested in?",
		"To make sure we schedule the right type of care, which of our treatments are you looking for?",
	},
	booking.TplInsurance: {
		"Please note that we are not currently accepting Medicare or Medicaid patients at this time. What insurance do you have?",
		"Please note that we are not currently accepting Medicare or Medicaid patients at this time. Which insurance provider are you with?",
	},
	booking.TplPolicyHolder: {
		"Thank you! Now I need some insurance details to verify your benefits. What is the policy holder's name?",
		"Perfect! To verify your insurance benefits, could you provide the policy holder's name?",
	},
	booking.TplPolicyNumber: {
		"Thank you! What is your policy number?",
		"Got it. Could you please provide your policy number?",
	},
	booking.TplGroupNumber: {
		"Thank you! What is your group number?",
		"Almost done with insurance. What is your group number?",
	},
	booking.TplAdditionalInfo: {
		"Thanks for providing your insurance information. Is there any additional information you'd like to share with us? This helps us prepare for your visit.",
		"Thank you! Anything else you'd like us to know before your visit? Feel free to skip this if not.",
	},
	booking.TplTiming: {
		"I'd be happy to help you find the perfect time. How soon would you like to come in?",
		"Let's find a time that works. Would you like to come in this week or next week?",
	},
	booking.TplDayOfWeek: {
		"Thank you! What day of the week works best for you?",
		"Here are the days we're open. Which day works best for you?",
	},
	booking.TplTimeOfDay: {
		"I've got you down for {day}. Our hours that day are {hours}. What time of day works best?",
		"Perfect, {day} it is. We're open {hours} that day. Would you prefer morning or afternoon?",
	},
	booking.TplConfirmation: {
		"I want to make sure I have everything right before we proceed. {summary}",
		"Let me confirm the details we've discussed so far. {summary}",
	},
	booking.TplCompletion: {
		"Perfect! Thank you for providing all this information. We'll review your details and get back to you shortly to confirm your appointment. You should receive a confirmation email or phone call within the next business day.",
		"Thank you for taking the time to provide all this information. We'll review your details and contact you soon to confirm your appointment. You should hear from us within the next business day.",
	},
	booking.TplAlreadySubmitted: {
		"Your appointment request has already been submitted. Our team will be in touch shortly to confirm the details. If anything changes, please give our office a call.",
		"We already have your booking request. You'll hear from us within the next business day. For urgent changes, please call our office.",
	},
	booking.TplNoAvailability: {
		"I'm sorry, {location} doesn't have any openings for that window. Would you like to try a different week, or call our office so we can help directly?",
		"Unfortunately I couldn't find open days at {location} for that timeframe. You can pick another week below, or call our office and we'll sort it out.",
	},
}
