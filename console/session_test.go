package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestSessionRunStopsOnExit(t *testing.T) {
	in := strings.NewReader("hello\nadd John 1234567890\n\nphone John\nexit\nphone John\n")
	var out bytes.Buffer

	s := NewSession(in, &out, newTestDispatcher(), Options{Greeting: DefaultGreeting}, nil)
	require.NoError(t, s.Run())

	assert.Equal(t, "Welcome to the assistant bot!\n"+
		"How can I help you?\n"+
		"Contact added.\n"+
		"John's phone number: 1234567890\n"+
		"Good bye!\n", out.String())
}

func TestSessionRunInteractivePrompt(t *testing.T) {
	in := strings.NewReader("hello\nclose\n")
	var out bytes.Buffer

	s := NewSession(in, &out, newTestDispatcher(), Options{
		Prompt:      DefaultPrompt,
		Greeting:    DefaultGreeting,
		Interactive: true,
	}, nil)
	require.NoError(t, s.Run())

	assert.Equal(t, "Welcome to the assistant bot!\n"+
		"Enter a command: How can I help you?\n"+
		"Enter a command: Good bye!\n", out.String())
}

func TestSessionRunEndOfInput(t *testing.T) {
	var out bytes.Buffer

	s := NewSession(strings.NewReader("hello"), &out, newTestDispatcher(), Options{}, nil)
	require.NoError(t, s.Run())
	assert.Equal(t, "How can I help you?\n", out.String())
}

func TestSessionRunReadError(t *testing.T) {
	s := NewSession(failingReader{}, &bytes.Buffer{}, newTestDispatcher(), Options{}, nil)
	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}

func TestSessionRunWriteError(t *testing.T) {
	s := NewSession(strings.NewReader("hello\n"), failingWriter{}, newTestDispatcher(), Options{Greeting: DefaultGreeting}, nil)
	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestSessionLogsCarrySessionID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	s := NewSession(strings.NewReader("add John 12\nexit\n"), &bytes.Buffer{},
		NewDispatcher(newTestDispatcher().book, fixedToday, logger), Options{}, logger)
	require.NoError(t, s.Run())
	assert.NotEqual(t, uuid.Nil, s.ID())

	started := logs.FilterMessage("session started").All()
	require.Len(t, started, 1)
	assert.Equal(t, s.ID().String(), started[0].ContextMap()["session"])

	failed := logs.FilterMessage("command failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "validation", failed[0].ContextMap()["kind"])
	assert.Equal(t, "add", failed[0].ContextMap()["command"])
}

func TestSessionRunAcceptsLinesBeyondReadBuffer(t *testing.T) {
	name := strings.Repeat("x", 70000)
	in := strings.NewReader("add " + name + " 1234567890\nhello\nexit\n")
	var out bytes.Buffer

	s := NewSession(in, &out, newTestDispatcher(), Options{}, nil)
	require.NoError(t, s.Run())

	assert.Equal(t, "Contact added.\nHow can I help you?\nGood bye!\n", out.String())
}

func TestSessionRunRejectsOverlongLineAndContinues(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"short", "add John 1234567890"},
		{"beyond read buffer", "add " + strings.Repeat("x", 70000) + " 1234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(tt.line + "\r\nhello\nexit\n")
			var out bytes.Buffer

			s := NewSession(in, &out, newTestDispatcher(), Options{MaxLineLength: 16}, nil)
			require.NoError(t, s.Run())

			assert.Equal(t, "Input line is too long.\nHow can I help you?\nGood bye!\n", out.String())
		})
	}
}

func TestSessionRunLineAtLimit(t *testing.T) {
	var out bytes.Buffer

	s := NewSession(strings.NewReader("hello\r\nexit"), &out, newTestDispatcher(), Options{MaxLineLength: 5}, nil)
	require.NoError(t, s.Run())
	assert.Equal(t, "How can I help you?\nGood bye!\n", out.String())
}
