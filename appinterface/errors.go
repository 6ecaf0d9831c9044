package appinterface

import "fmt"

// ValidationError carries the message shown to the user verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var (
	ErrInvalidPhone    = &ValidationError{Msg: "Invalid phone number format. Must be a string of 10 digits."}
	ErrInvalidBirthday = &ValidationError{Msg: "Invalid birthday format. Must be in the format DD.MM.YYYY."}
)

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "Contact not found."
	}
	return fmt.Sprintf("Contact %s not found.", e.Name)
}
