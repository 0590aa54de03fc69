package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// IO is everything the commands need from the outside world. Commands never
// touch os.Stdin, os.Stdout or os.Exit directly.
type IO interface {
	// ReadAllText returns the whole content of the named file, or of
	// standard input when name is "-".
	ReadAllText(name string) (string, error)
	// WriteLine writes line followed by a newline to standard output.
	WriteLine(line string) error
	// WriteText writes text to standard output exactly as given.
	WriteText(text string) error
	// ExitWith terminates the program with the given status code.
	ExitWith(code int)
}

// stdIO is the IO backed by the process's standard streams.
type stdIO struct {
	stdin  io.Reader
	stdout *bufio.Writer
}

func newStdIO() *stdIO {
	return &stdIO{
		stdin:  os.Stdin,
		stdout: bufio.NewWriter(os.Stdout),
	}
}

func (s *stdIO) ReadAllText(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func (s *stdIO) WriteLine(line string) error {
	if _, err := s.stdout.WriteString(line); err != nil {
		return err
	}
	return s.stdout.WriteByte('\n')
}

func (s *stdIO) WriteText(text string) error {
	_, err := s.stdout.WriteString(text)
	return err
}

func (s *stdIO) ExitWith(code int) {
	_ = s.stdout.Flush()
	os.Exit(code)
}
