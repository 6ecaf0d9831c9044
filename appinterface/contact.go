package appinterface

import (
	"slices"
	"strings"
	"time"
)

const (
	PhoneLength    = 10
	BirthdayLayout = "02.01.2006"
)

func ParsePhone(value string) (string, error) {
	if len(value) != PhoneLength {
		return "", ErrInvalidPhone
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return "", ErrInvalidPhone
		}
	}
	return value, nil
}

// Birthday is a calendar date without a time component.
type Birthday struct {
	date time.Time
}

func ParseBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: t}, nil
}

func (b Birthday) Day() int {
	return b.date.Day()
}

func (b Birthday) Month() time.Month {
	return b.date.Month()
}

func (b Birthday) Year() int {
	return b.date.Year()
}

// OccurrenceIn returns the UTC date the birthday falls on in year.
// A 29 February birthday falls on 28 February in common years.
func (b Birthday) OccurrenceIn(year int) time.Time {
	day := b.Day()
	if b.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, b.Month(), day, 0, 0, 0, 0, time.UTC)
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func NewContact(name string) *Contact {
	return &Contact{Name: name}
}

func (c *Contact) AddPhone(phone string) error {
	p, err := ParsePhone(phone)
	if err != nil {
		return err
	}
	c.Phones = append(c.Phones, p)
	return nil
}

// RemovePhone drops every stored copy of phone.
func (c *Contact) RemovePhone(phone string) {
	c.Phones = slices.DeleteFunc(c.Phones, func(p string) bool {
		return p == phone
	})
}

// EditPhone always replaces the first stored phone, whichever number the
// caller meant. It does nothing when the contact has no phones.
func (c *Contact) EditPhone(newPhone string) error {
	p, err := ParsePhone(newPhone)
	if err != nil {
		return err
	}
	if len(c.Phones) > 0 {
		c.Phones[0] = p
	}
	return nil
}

func (c *Contact) SetBirthday(date string) error {
	b, err := ParseBirthday(date)
	if err != nil {
		return err
	}
	c.Birthday = &b
	return nil
}

func (c Contact) Clone() Contact {
	cpy := c
	cpy.Phones = slices.Clone(c.Phones)
	if c.Birthday != nil {
		b := *c.Birthday
		cpy.Birthday = &b
	}
	return cpy
}

func (c Contact) String() string {
	birthday := "None"
	if c.Birthday != nil {
		birthday = c.Birthday.String()
	}
	return "Contact name: " + c.Name + ", phones: " + strings.Join(c.Phones, "; ") + ", birthday: " + birthday
}
