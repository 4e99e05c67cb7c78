// Package cli handles cmd line input for DBG and testing of the list field
// engine: a small REPL that types into a span buffer and shows what the
// engine does with it.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/listfield/pkg/field"
	"github.com/bastiangx/listfield/pkg/span"
	"github.com/bastiangx/listfield/pkg/suggest"
)

// TrimValidator accepts only non-empty tokens without surrounding spaces
// and fixes a token by trimming it.
type TrimValidator struct{}

// IsValid implements field.Validator.
func (TrimValidator) IsValid(token string) bool {
	trimmed := strings.TrimSpace(token)
	return trimmed != "" && trimmed == token
}

// FixText implements field.Validator.
func (TrimValidator) FixText(token string) string {
	return strings.TrimSpace(token)
}

// Session drives one field engine interactively from stdin.
type Session struct {
	buf *span.Buffer
	fld *field.Field

	lastResults []suggest.Suggestion
	lastMarker  *field.Marker
}

// NewSession wires a session around buf and fld and hooks the suggestion
// callbacks up to the log.
func NewSession(buf *span.Buffer, fld *field.Field) *Session {
	s := &Session{buf: buf, fld: fld}
	fld.OnSuggestions(func(results []suggest.Suggestion) {
		s.lastResults = results
		if len(results) == 0 {
			log.Print("no suggestions")
			return
		}
		for i, r := range results {
			log.Printf("  [%d] %s (%d)", i, r.Word, r.Frequency)
		}
	})
	fld.OnDismiss(func() {
		s.lastResults = nil
		log.Print("suggestions dismissed")
	})
	return s
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin, and processes it. The loop terminates on EOF or
// the :quit command.
func (s *Session) Start() error {
	log.Print("listfield CLI")
	log.Print("type to insert at the cursor, :help for commands (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		s.show()
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if !s.handleCommand(line) {
				return nil
			}
			continue
		}
		s.typeText(line)
	}
}

// typeText inserts text at the cursor and re-runs filtering, the same as a
// host would on a text-change event.
func (s *Session) typeText(text string) {
	cur := s.buf.SelectionEnd()
	s.buf.Replace(cur, cur, span.Plain(text))
	s.lastMarker = nil
	s.fld.PerformFiltering()
}

// handleCommand processes a :command line. Returns false to stop the loop.
func (s *Session) handleCommand(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	arg := -1
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			arg = n
		}
	}

	switch cmd {
	case ":help":
		log.Print(":cur N    move cursor to byte offset N")
		log.Print(":pick N   complete with suggestion N from the last query")
		log.Print(":del      delete one char before the cursor (undoes a fresh pick)")
		log.Print(":commit   run validation over all tokens")
		log.Print(":clear    empty the buffer")
		log.Print(":quit     exit")
	case ":cur":
		s.buf.SetSelection(arg)
		s.fld.PerformFiltering()
	case ":pick":
		if arg < 0 || arg >= len(s.lastResults) {
			log.Errorf("no suggestion %d", arg)
			break
		}
		m := s.fld.SetOrReplaceText(s.lastResults[arg].Word)
		s.lastMarker = &m
		s.fld.PerformFiltering()
	case ":del":
		s.deleteBack()
	case ":commit":
		s.fld.PerformValidation()
		s.lastMarker = nil
	case ":clear":
		s.buf.Replace(0, s.buf.Len(), span.Text{})
		s.lastMarker = nil
		s.fld.PerformFiltering()
	case ":quit":
		return false
	default:
		log.Errorf("unknown command %s (:help for the list)", cmd)
	}
	return true
}

// deleteBack deletes one character before the cursor. When the previous
// action was a completion, the whole substitution is undone instead,
// using the replacement marker.
func (s *Session) deleteBack() {
	if m := s.lastMarker; m != nil && s.buf.SelectionEnd() == m.End {
		s.buf.Replace(m.Start, m.End, span.Plain(m.Original))
		s.lastMarker = nil
		s.fld.PerformFiltering()
		return
	}
	cur := s.buf.SelectionEnd()
	if cur > 0 {
		s.buf.Replace(cur-1, cur, span.Text{})
		s.fld.PerformFiltering()
	}
	s.lastMarker = nil
}

// show prints the buffer with the cursor position marked.
func (s *Session) show() {
	text := s.buf.String()
	cur := s.buf.SelectionEnd()
	log.Printf("[%s|%s]", text[:cur], text[cur:])
}
