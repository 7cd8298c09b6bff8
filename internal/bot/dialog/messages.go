package dialog

// Main-menu commands. These abandon any flow in progress.
const (
	cmdStart    = "/start"
	btnToday    = "What holiday is it today?"
	btnCalendar = "My personal calendar"
)

// Choice tokens sent back by the transport on button presses.
const (
	tokenChooseDate  = "choose_another_date"
	tokenAddHoliday  = "add_personal_holiday"
	tokenDeleteAll   = "delete_all_holidays"
	tokenDeletePrefx = "delete_holiday_"
)

// User-visible texts.
const (
	msgGreeting = "Hi! Pick an option on the keyboard below."
	msgUnknown  = "I didn't get that. Pick an option on the keyboard below."

	msgAskDate     = "Enter a date in dd.mm.yyyy format:"
	msgBadDate     = "❌ Invalid date format. Please try again: dd.mm.yyyy"
	msgAskName     = "Enter the holiday name:"
	msgEntryAdded  = "🎉 Holiday %q on %s has been added!"
	msgCleared     = "Your calendar has been cleared."
	msgEntryGone   = "Holiday removed. Your remaining personal holidays:\n\n"
	msgCalendarHdr = "Your personal holidays:\n\n"
	msgCalendarNil = "Your calendar is empty. You can add personal holidays."

	msgHolidaysToday = "Holidays today (%s):\n\n"
	msgHolidaysOn    = "Holidays on %s:\n\n"
	msgNoHolidays    = "No official holidays on %s."
	msgLookupFailed  = "Couldn't fetch holiday data. Please try again later."
	msgStorageFailed = "Something went wrong. Please try again."
)
