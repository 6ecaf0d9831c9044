package console

// ArgumentError reports a command line with the wrong number of arguments.
type ArgumentError struct {
	Command string
	Need    int
	Got     int
}

func (e *ArgumentError) Error() string {
	if e.Got < e.Need {
		return "Not enough arguments provided."
	}
	return "Too many arguments provided."
}
