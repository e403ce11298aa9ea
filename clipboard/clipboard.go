// Package clipboard delivers the finished citation to the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os/exec"
	"regexp"
	"strings"
	"time"

	atotto "github.com/atotto/clipboard"
)

const (
	MIMEHTML  = "text/html"
	MIMEPlain = "text/plain"
)

// commandWaitDelay bounds how long Store waits for a clipboard program's
// output pipes after the program itself has exited.
const commandWaitDelay = 500 * time.Millisecond

// ErrNoBackend is returned when no clipboard program is available.
var ErrNoBackend = errors.New("clipboard: no backend available")

// Sink stores content of the given MIME type.
type Sink interface {
	Store(mime, content string) error
}

// Document wraps an HTML fragment so rich clipboard targets read it as UTF-8
// HTML.
func Document(fragment string) string {
	return `<meta http-equiv="content-type" content="text/html; charset=utf-8">` + fragment
}

var tagRE = regexp.MustCompile(`<[^>]*>`)

// StripHTML reduces an HTML fragment to its text.
func StripHTML(s string) string {
	return html.UnescapeString(tagRE.ReplaceAllString(s, ""))
}

// Command is an external program that reads clipboard content on stdin.
type Command struct {
	Name string
	Args []string
}

// System writes to the desktop clipboard.
//
// Content of a MIME type other than text/plain goes through the first typed
// command found on PATH (xclip, wl-copy). Without one, the content is reduced
// to plain text and written with github.com/atotto/clipboard.
type System struct {
	// Commands overrides the typed backends; nil uses DefaultCommands.
	Commands func(mime string) []Command

	lookPath func(string) (string, error)
	run      func(c Command, stdin string) error
	writeAll func(string) error
}

// DefaultCommands returns the typed clipboard programs tried for mime.
func DefaultCommands(mime string) []Command {
	return []Command{
		{Name: "wl-copy", Args: []string{"--type", mime}},
		{Name: "xclip", Args: []string{"-selection", "clipboard", "-t", mime}},
	}
}

var _ Sink = (*System)(nil)

func (s *System) Store(mime, content string) error {
	if mime != "" && mime != MIMEPlain {
		if c, ok := s.findCommand(mime); ok {
			if err := s.runCommand(c, content); err != nil {
				return fmt.Errorf("clipboard: %s: %w", c.Name, err)
			}
			return nil
		}
		content = StripHTML(content)
	}

	if atotto.Unsupported && s.writeAll == nil {
		return ErrNoBackend
	}
	if err := s.writeAllText(content); err != nil {
		return fmt.Errorf("clipboard: write text: %w", err)
	}
	return nil
}

func (s *System) findCommand(mime string) (Command, bool) {
	commands := DefaultCommands
	if s.Commands != nil {
		commands = s.Commands
	}
	lookPath := exec.LookPath
	if s.lookPath != nil {
		lookPath = s.lookPath
	}
	for _, c := range commands(mime) {
		if _, err := lookPath(c.Name); err == nil {
			return c, true
		}
	}
	return Command{}, false
}

func (s *System) runCommand(c Command, stdin string) error {
	if s.run != nil {
		return s.run(c, stdin)
	}
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// xclip forks a child that keeps serving the selection and holds stderr
	// open. Its exit status is all that matters.
	cmd.WaitDelay = commandWaitDelay
	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		return nil
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (s *System) writeAllText(text string) error {
	if s.writeAll != nil {
		return s.writeAll(text)
	}
	return atotto.WriteAll(text)
}

// Memory records stores. It is used by tests and headless runs.
type Memory struct {
	Entries []Entry
	// Err, when set, is returned by Store and nothing is recorded.
	Err error
}

// Entry is one recorded Store call.
type Entry struct {
	MIME    string
	Content string
}

var _ Sink = (*Memory)(nil)

func (m *Memory) Store(mime, content string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Entries = append(m.Entries, Entry{MIME: mime, Content: content})
	return nil
}

// Last returns the most recent entry.
func (m *Memory) Last() (Entry, bool) {
	if len(m.Entries) == 0 {
		return Entry{}, false
	}
	return m.Entries[len(m.Entries)-1], true
}

// Discard accepts and drops everything.
type Discard struct{}

func (Discard) Store(string, string) error { return nil }
