package models

import "github.com/dmitrijs2005/holidaybot/internal/datex"

// HolidayEntry is one personal holiday record. Name is not unique per user:
// several entries may share the same name and date, and deletion by name
// removes every match.
type HolidayEntry struct {
	ID     int64
	UserID int64
	Name   string
	Date   datex.Date
}
