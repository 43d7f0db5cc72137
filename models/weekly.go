package models

import "time"

// WeeklyTemplate holds one week's schedule setup: windows created for the anchor
// date, replicated onto the listed weekdays for a number of following weeks.
type WeeklyTemplate struct {
	AnchorDate  string               `json:"anchorDate" binding:"required"` // e.g. "2026-09-07"
	ActiveDays  []time.Weekday       `json:"activeDays" binding:"required"`
	BaseWindows []AvailabilityWindow `json:"baseWindows" binding:"required"`
	Weeks       int                  `json:"weeks" binding:"required,min=1,max=8"`
}
