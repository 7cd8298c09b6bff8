package dialog

import "github.com/dmitrijs2005/holidaybot/internal/bot/models"

// mainMenu is the persistent reply keyboard offered in idle state.
func mainMenu() []string {
	return []string{btnToday, btnCalendar}
}

// chooseDateChoices is attached to every lookup result so the user can query
// another date.
func chooseDateChoices() [][]Choice {
	return [][]Choice{
		{{Label: "📅 Pick another date", Token: tokenChooseDate}},
	}
}

// emptyCalendarChoices is the affordance shown with an empty calendar.
func emptyCalendarChoices() [][]Choice {
	return [][]Choice{
		{{Label: "➕ Add a holiday", Token: tokenAddHoliday}},
	}
}

// calendarChoices builds the per-entry delete affordances plus the add and
// delete-all row. One delete button per entry, in list order; duplicate names
// produce duplicate buttons, and pressing either removes all matches.
func calendarChoices(entries []models.HolidayEntry) [][]Choice {
	rows := make([][]Choice, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, []Choice{
			{Label: "❌ " + e.Name, Token: tokenDeletePrefx + e.Name},
		})
	}
	rows = append(rows, []Choice{
		{Label: "➕ Add a holiday", Token: tokenAddHoliday},
		{Label: "🗑 Delete all", Token: tokenDeleteAll},
	})
	return rows
}
