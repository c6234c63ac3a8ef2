package models

import "time"

// DailyDraw records that on calendar day Date the entry EntryID was drawn.
// Date is a zero-padded YYYY-MM-DD key in the device's local time zone and
// is unique: at most one draw exists per day.
type DailyDraw struct {
	Date    string    `json:"date" db:"date"`
	EntryID string    `json:"entryId" db:"entry_id"`
	DrawnAt time.Time `json:"drawnAt" db:"drawn_at"`
}

// DateLayout is the calendar-day key format used by daily draws
const DateLayout = "2006-01-02"
