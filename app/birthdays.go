package app

import (
	"slices"
	"time"

	"assistant-bot/appinterface"
)

// UpcomingBirthdays groups contacts by the weekday their birthday is
// celebrated on, for occurrences in [today, today+window). Weekend
// birthdays are celebrated on the following Monday.
func (b *book) UpcomingBirthdays(today time.Time) appinterface.Schedule {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var schedule appinterface.Schedule
	for _, c := range b.contacts {
		if c.Birthday == nil {
			continue
		}
		next := c.Birthday.OccurrenceIn(today.Year())
		if next.Before(today) {
			next = c.Birthday.OccurrenceIn(today.Year() + 1)
		}
		if daysBetween(today, next) >= b.window {
			continue
		}
		schedule = addToSchedule(schedule, celebrationDate(next), c.Name)
	}

	slices.SortStableFunc(schedule, func(x, y appinterface.BirthdayGroup) int {
		return x.Date.Compare(y.Date)
	})
	return schedule
}

func (b *book) Window() int {
	return b.window
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func celebrationDate(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

func addToSchedule(schedule appinterface.Schedule, date time.Time, name string) appinterface.Schedule {
	idx := slices.IndexFunc(schedule, func(g appinterface.BirthdayGroup) bool {
		return g.Weekday == date.Weekday()
	})
	if idx < 0 {
		return append(schedule, appinterface.BirthdayGroup{
			Weekday: date.Weekday(),
			Date:    date,
			Names:   []string{name},
		})
	}
	group := &schedule[idx]
	group.Names = append(group.Names, name)
	if date.Before(group.Date) {
		group.Date = date
	}
	return schedule
}
