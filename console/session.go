package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPrompt   = "Enter a command: "
	DefaultGreeting = "Welcome to the assistant bot!"

	// DefaultMaxLineLength is the longest command line accepted, in bytes.
	DefaultMaxLineLength = 1024 * 1024

	lineTooLong = "Input line is too long."
)

var errLineTooLong = errors.New("input line too long")

type Options struct {
	Prompt   string
	Greeting string
	// Interactive turns the prompt on. It is usually set when the input is
	// a terminal.
	Interactive bool
	// MaxLineLength defaults to DefaultMaxLineLength.
	MaxLineLength int
}

type Session struct {
	id         uuid.UUID
	in         *bufio.Reader
	out        io.Writer
	dispatcher *Dispatcher
	options    Options
	logger     *zap.Logger
}

func NewSession(in io.Reader, out io.Writer, dispatcher *Dispatcher, options Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if options.MaxLineLength <= 0 {
		options.MaxLineLength = DefaultMaxLineLength
	}
	id := uuid.New()
	return &Session{
		id:         id,
		in:         bufio.NewReaderSize(in, 64*1024),
		out:        out,
		dispatcher: dispatcher,
		options:    options,
		logger:     logger.With(zap.String("session", id.String())),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run reads commands until the user exits or the input ends. Only I/O
// failures are returned.
func (s *Session) Run() error {
	s.logger.Info("session started", zap.Bool("interactive", s.options.Interactive))
	defer s.logger.Info("session finished")

	if s.options.Greeting != "" {
		if err := s.println(s.options.Greeting); err != nil {
			return err
		}
	}
	for {
		if s.options.Interactive {
			if _, err := io.WriteString(s.out, s.options.Prompt); err != nil {
				return fmt.Errorf("could not write prompt: %w", err)
			}
		}
		line, err := s.readLine()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errLineTooLong):
			s.logger.Info("command line rejected", zap.Int("limit", s.options.MaxLineLength))
			if err := s.println(lineTooLong); err != nil {
				return err
			}
			continue
		case err != nil:
			return fmt.Errorf("could not read command: %w", err)
		}
		reply, done := s.dispatcher.Dispatch(line)
		if reply != "" {
			if err := s.println(reply); err != nil {
				return err
			}
		}
		if done {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line over the
// limit is consumed in full and reported as errLineTooLong. io.EOF is only
// returned once no bytes are left.
func (s *Session) readLine() (string, error) {
	var (
		line    []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, err := s.in.ReadSlice('\n')
		read = read || len(chunk) > 0
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimRight(line, "\r\n")) > s.options.MaxLineLength {
				tooLong = true
				line = nil
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				return "", io.EOF
			}
		case err != nil:
			return "", err
		}
		if tooLong {
			return "", errLineTooLong
		}
		return string(bytes.TrimRight(line, "\r\n")), nil
	}
}

func (s *Session) println(text string) error {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		return fmt.Errorf("could not write reply: %w", err)
	}
	return nil
}
