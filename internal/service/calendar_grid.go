package service

import (
	"time"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

// BuildMonthView assembles the annotated week-by-week grid for one calendar
// month. Rows are keyed by week-of-year, so a month that starts mid-week gets
// leading nil cells up to the first day's weekday column. Every annotation is
// computed fresh from the supplied snapshots; the view holds no cached state.
func BuildMonthView(year int, month time.Month, today, selected models.Date, snapshot models.AvailabilitySnapshot, sessionDays map[models.Date]struct{}) models.MonthView {
	first := models.NewDate(year, month, 1)
	last := models.NewDate(year, month, models.DaysInMonth(year, month))
	firstWeek := first.WeekOfYear()

	var weeks []models.MonthWeek
	for day := first; !last.Before(day); day = day.AddDays(1) {
		idx := day.WeekOfYear() - firstWeek
		for len(weeks) <= idx {
			weeks = append(weeks, models.MonthWeek{Number: firstWeek + len(weeks)})
		}
		_, hasSession := sessionDays[day]
		cell := models.CalendarDay{
			Date:               day,
			IsInDisplayedMonth: day.Year == year && day.Month == month,
			IsToday:            day.Equal(today),
			IsSelected:         day.Equal(selected),
			IsUnavailable:      snapshot.IsUnavailable(day),
			HasSession:         hasSession,
		}
		weeks[idx].Days[day.Weekday()] = &cell
	}

	return models.MonthView{Year: year, Month: int(month), Weeks: weeks}
}

// NextMonth shifts a reference day forward by exactly one calendar month,
// clamping the day-of-month where the target month is shorter.
func NextMonth(ref models.Date) models.Date {
	return ref.AddMonths(1)
}

// PrevMonth shifts a reference day back by exactly one calendar month.
func PrevMonth(ref models.Date) models.Date {
	return ref.AddMonths(-1)
}
