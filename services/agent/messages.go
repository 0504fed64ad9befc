// File: services/agent/messages.go
package agent

// User-facing reply templates.
const (
	msgGreeting = "Hello! I'm your calendar scheduling and query assistant. Ready to help!"

	msgCannotProcess = "I couldn't process your request. Please try again."

	msgUnrecognized = "Sorry, I couldn't tell whether you want to schedule or look up an event. Try 'Schedule X' or 'What is my X'."

	msgCalendarUnavailable = "I couldn't reach your calendar right now. Please try again later."

	// %s = title, %s = DD/MM/YYYY, %s = HH:MM, %s = link
	msgScheduled = "✅ Perfect! The event '%s' is scheduled for %s at %s. See it in your calendar: %s"

	// %s = "DD/MM at HH:MM"
	msgVerifyFree = "✅ Confirmed! You are free on %s."

	// %s = HH:MM of the requested slot, %s = rendered options
	msgBusySuggest = "❌ The requested time (%s) is taken. How about one of these options: %s? Reply with the number of the option you want (e.g. '1')."

	msgBusyNoAlternatives = "❌ The requested time is taken and I couldn't find free slots in the following hours."

	// %s = "DD/MM at HH:MM", %s = rendered options
	msgVerifyBusySuggest = "❌ Busy. You have a commitment on %s. I found availability at: %s. Reply with the number of the option to schedule the event."

	// %s = "DD/MM at HH:MM"
	msgVerifyBusyNoAlternatives = "❌ Busy. You have a commitment on %s and I couldn't find free slots in the following hours."

	msgInvalidOption = "Invalid option. Please reply with just the number of one of the offered options (e.g. '1', '2')."

	// %s = title, %s = HH:MM, %s = link
	msgBookingConfirmed = "✅ Booking confirmed! The event '%s' is set for %s. See: %s"

	msgAskTitle = "Great, time selected. Now, what should be the title of this event?"

	msgEmptyKeyword = "I couldn't extract a keyword to search for."

	// %s = keyword
	msgNoEventsFound = "I couldn't find upcoming events about '%s'."

	// %s = keyword; event lines follow
	msgEventsHeader = "I found these upcoming events about '%s':\n\n"

	// Cause-specific parse feedback.
	msgBadDate = "I couldn't read the date of your request. Please write it like 2025-03-10 or spell the day out."
	msgBadTime = "I couldn't read the time of your request. Please use a 24-hour HH:MM format."
	msgBadZone = "The configured timezone is invalid, so I can't anchor your request. Please contact the operator."
)
