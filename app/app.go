package app

import (
	"slices"

	"assistant-bot/appinterface"
)

const DefaultBirthdayWindow = 7

type book struct {
	index    map[string]int
	contacts []*appinterface.Contact
	window   int
}

var _ appinterface.Book = (*book)(nil)

// NewBook returns an empty book that reports birthdays falling within
// window days of today.
func NewBook(window int) appinterface.Book {
	if window < 1 {
		window = DefaultBirthdayWindow
	}
	return &book{
		index:  make(map[string]int),
		window: window,
	}
}

func (b *book) lookup(name string) (*appinterface.Contact, error) {
	idx, ok := b.index[name]
	if !ok {
		return nil, &appinterface.NotFoundError{Name: name}
	}
	return b.contacts[idx], nil
}

// AddContact replaces any contact already stored under name, keeping its
// position in the iteration order.
func (b *book) AddContact(name string, phone string) error {
	contact := appinterface.NewContact(name)
	if err := contact.AddPhone(phone); err != nil {
		return err
	}
	if idx, ok := b.index[name]; ok {
		b.contacts[idx] = contact
		return nil
	}
	b.index[name] = len(b.contacts)
	b.contacts = append(b.contacts, contact)
	return nil
}

func (b *book) AddPhone(name string, phone string) error {
	contact, err := b.lookup(name)
	if err != nil {
		return err
	}
	return contact.AddPhone(phone)
}

func (b *book) RemovePhone(name string, phone string) error {
	contact, err := b.lookup(name)
	if err != nil {
		return err
	}
	contact.RemovePhone(phone)
	return nil
}

func (b *book) EditPhone(name string, newPhone string) error {
	contact, err := b.lookup(name)
	if err != nil {
		return err
	}
	return contact.EditPhone(newPhone)
}

func (b *book) AddBirthday(name string, date string) error {
	contact, err := b.lookup(name)
	if err != nil {
		return err
	}
	return contact.SetBirthday(date)
}

func (b *book) Find(name string) (appinterface.Contact, error) {
	contact, err := b.lookup(name)
	if err != nil {
		return appinterface.Contact{}, err
	}
	return contact.Clone(), nil
}

func (b *book) Delete(name string) {
	idx, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.contacts = slices.Delete(b.contacts, idx, idx+1)
	for i := idx; i < len(b.contacts); i++ {
		b.index[b.contacts[i].Name] = i
	}
}

func (b *book) All() []appinterface.Contact {
	cpy := make([]appinterface.Contact, len(b.contacts))
	for i, c := range b.contacts {
		cpy[i] = c.Clone()
	}
	return cpy
}
