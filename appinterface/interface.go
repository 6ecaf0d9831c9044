package appinterface

import (
	"time"
)

type Contact struct {
	Name     string
	Phones   []string
	Birthday *Birthday
}

// BirthdayGroup lists the contacts to congratulate on one weekday.
// Date is the earliest celebration date that fell into the group.
type BirthdayGroup struct {
	Weekday time.Weekday
	Date    time.Time
	Names   []string
}

// Schedule is ordered by celebration date.
type Schedule []BirthdayGroup

// Book is keyed by contact name and iterates in insertion order.
type Book interface {
	AddContact(name string, phone string) error
	AddPhone(name string, phone string) error
	RemovePhone(name string, phone string) error
	EditPhone(name string, newPhone string) error
	AddBirthday(name string, date string) error
	Find(name string) (Contact, error)
	Delete(name string)
	All() []Contact
	UpcomingBirthdays(today time.Time) Schedule
	// Window is the number of days UpcomingBirthdays looks ahead.
	Window() int
}
