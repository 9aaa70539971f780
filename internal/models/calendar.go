package models

// CalendarDay is one annotated cell of the month grid. It is derived state,
// recomputed from the current availability and session snapshots on every
// build; it must never be cached across a store mutation.
type CalendarDay struct {
	Date               Date `json:"date"`
	IsInDisplayedMonth bool `json:"isInDisplayedMonth"`
	IsToday            bool `json:"isToday"`
	IsSelected         bool `json:"isSelected"`
	IsUnavailable      bool `json:"isUnavailable"`
	HasSession         bool `json:"hasSession"`
}

// MonthWeek is one grid row. Days has exactly seven slots, Sunday through
// Saturday; slots outside the displayed month's first/last day are nil.
type MonthWeek struct {
	Number int             `json:"weekNumber"`
	Days   [7]*CalendarDay `json:"days"`
}

// MonthView is the annotated week-by-week grid for one calendar month.
type MonthView struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks []MonthWeek `json:"weeks"`
}
