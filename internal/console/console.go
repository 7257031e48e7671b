// Package console renders the front-end on a plain terminal.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Screen implements the list renderer and the user notifier on one writer.
// The last rendered list is kept so it can be reprinted after an alert.
type Screen struct {
	mu    sync.Mutex
	out   io.Writer
	lines []string
}

func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out}
}

func (s *Screen) Render(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines[:0:0], lines...)
	s.printList()
}

func (s *Screen) Alert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "[!] %s\n", message)
}

// Lines returns a copy of what is currently displayed.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.lines...)
}

func (s *Screen) printList() {
	fmt.Fprintln(s.out, "--- Выражения ---")
	for _, line := range s.lines {
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintln(s.out, "-----------------")
}

// Field is the expression input: the last line typed by the user.
type Field struct {
	mu    sync.Mutex
	value string
}

func (f *Field) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *Field) Clear() {
	f.Set("")
}
