package console

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"assistant-bot/appinterface"
)

type commandTag int

const (
	helloCommand commandTag = iota
	addCommand
	changeCommand
	phoneCommand
	allCommand
	addBirthdayCommand
	showBirthdayCommand
	birthdaysCommand
	exitCommand
)

// Extra arguments are ignored unless exact is set.
type command struct {
	tag   commandTag
	nargs int
	exact bool
}

var commands = map[string]command{
	"hello":         {tag: helloCommand},
	"add":           {tag: addCommand, nargs: 2, exact: true},
	"change":        {tag: changeCommand, nargs: 2, exact: true},
	"phone":         {tag: phoneCommand, nargs: 1},
	"all":           {tag: allCommand},
	"add-birthday":  {tag: addBirthdayCommand, nargs: 2, exact: true},
	"show-birthday": {tag: showBirthdayCommand, nargs: 1},
	"birthdays":     {tag: birthdaysCommand},
	"close":         {tag: exitCommand},
	"exit":          {tag: exitCommand},
}

const (
	invalidCommand = "Invalid command."
	goodBye        = "Good bye!"
)

// ParseInput splits a line into a lower-cased command and its arguments.
// A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

type Dispatcher struct {
	book   appinterface.Book
	today  func() time.Time
	logger *zap.Logger
}

func NewDispatcher(book appinterface.Book, today func() time.Time, logger *zap.Logger) *Dispatcher {
	if today == nil {
		today = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		book:   book,
		today:  today,
		logger: logger,
	}
}

// Dispatch runs one command line and returns the reply. done is true once
// the user asked to leave.
func (d *Dispatcher) Dispatch(line string) (reply string, done bool) {
	name, args := ParseInput(line)
	if name == "" {
		return "", false
	}
	cmd, ok := commands[name]
	if !ok {
		d.logger.Debug("unknown command", zap.String("command", name))
		return invalidCommand, false
	}
	d.logger.Debug("dispatching command", zap.String("command", name), zap.Int("args", len(args)))

	if cmd.tag == exitCommand {
		return goodBye, true
	}
	if len(args) < cmd.nargs || (cmd.exact && len(args) > cmd.nargs) {
		return d.fail(name, &ArgumentError{Command: name, Need: cmd.nargs, Got: len(args)}), false
	}

	var err error
	switch cmd.tag {
	case helloCommand:
		reply = "How can I help you?"
	case addCommand:
		reply, err = d.addContact(args[0], args[1])
	case changeCommand:
		reply, err = d.changeContact(args[0], args[1])
	case phoneCommand:
		reply, err = d.showPhone(args[0])
	case allCommand:
		reply = d.showAll()
	case addBirthdayCommand:
		reply, err = d.addBirthday(args[0], args[1])
	case showBirthdayCommand:
		reply, err = d.showBirthday(args[0])
	case birthdaysCommand:
		reply = d.showBirthdays()
	}
	if err != nil {
		return d.fail(name, err), false
	}
	return reply, false
}

func (d *Dispatcher) fail(command string, err error) string {
	d.logger.Info("command failed",
		zap.String("command", command),
		zap.String("kind", errorKind(err)),
		zap.Error(err))
	return Render(err)
}

// Render converts a handler error into the line shown to the user.
func Render(err error) string {
	var (
		validationErr *appinterface.ValidationError
		notFoundErr   *appinterface.NotFoundError
		argumentErr   *ArgumentError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	case errors.As(err, &argumentErr):
		return argumentErr.Error()
	}
	return err.Error()
}

func errorKind(err error) string {
	var (
		validationErr *appinterface.ValidationError
		notFoundErr   *appinterface.NotFoundError
		argumentErr   *ArgumentError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &argumentErr):
		return "argument"
	}
	return "unknown"
}

func (d *Dispatcher) addContact(name, phone string) (string, error) {
	if err := d.book.AddContact(name, phone); err != nil {
		return "", err
	}
	return "Contact added.", nil
}

func (d *Dispatcher) changeContact(name, phone string) (string, error) {
	if err := d.book.EditPhone(name, phone); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (d *Dispatcher) showPhone(name string) (string, error) {
	contact, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if len(contact.Phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", name), nil
	}
	return fmt.Sprintf("%s's phone number: %s", name, contact.Phones[0]), nil
}

func (d *Dispatcher) showAll() string {
	contacts := d.book.All()
	if len(contacts) == 0 {
		return "No contacts found."
	}
	var sb strings.Builder
	sb.WriteString("All contacts:")
	for _, c := range contacts {
		sb.WriteString("\n")
		sb.WriteString(c.String())
	}
	return sb.String()
}

func (d *Dispatcher) addBirthday(name, date string) (string, error) {
	if err := d.book.AddBirthday(name, date); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (d *Dispatcher) showBirthday(name string) (string, error) {
	contact, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	if contact.Birthday == nil {
		return fmt.Sprintf("%s has no birthday specified.", name), nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, contact.Birthday), nil
}

func (d *Dispatcher) showBirthdays() string {
	period := lookahead(d.book.Window())
	schedule := d.book.UpcomingBirthdays(d.today())
	if len(schedule) == 0 {
		return fmt.Sprintf("No birthdays in %s.", period)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Birthdays for %s:", period)
	for _, g := range schedule {
		fmt.Fprintf(&sb, "\n%s: %s", g.Weekday, strings.Join(g.Names, ", "))
	}
	return sb.String()
}

func lookahead(days int) string {
	switch days {
	case 1:
		return "the next day"
	case 7:
		return "the next week"
	}
	return fmt.Sprintf("the next %d days", days)
}
