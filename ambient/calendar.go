package ambient

import "time"

// Month is a calendar page for the countdown widget
type Month struct {
	Year    int
	Month   time.Month
	Days    int
	Leading int // Blank cells before the 1st, Sunday-first week
	Target  int // Day of month of the countdown target
	Today   int // Day of month of now, 0 when now is in another month
}

// MonthOf builds the page containing target, marking today when it falls in the same month
func MonthOf(target, now time.Time) Month {
	first := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location())
	m := Month{
		Year:    target.Year(),
		Month:   target.Month(),
		Days:    first.AddDate(0, 1, -1).Day(),
		Leading: int(first.Weekday()),
		Target:  target.Day(),
	}
	now = now.In(target.Location())
	if now.Year() == m.Year && now.Month() == m.Month {
		m.Today = now.Day()
	}
	return m
}

// Weeks returns the page as rows of seven day numbers, 0 for blank cells
func (m Month) Weeks() [][7]int {
	var weeks [][7]int
	var week [7]int
	col := m.Leading
	for d := 1; d <= m.Days; d++ {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
