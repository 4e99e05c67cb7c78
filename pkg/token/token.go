/*
Package token finds token boundaries in delimiter-separated list fields.

A Tokenizer is a stateless capability: given the field text and a cursor
offset it locates the token under the cursor and can terminate a token so
it is safe to insert back into the field. The SingleChar implementation
covers the common case of lists separated by one character (default `;`)
and optional spaces.
*/
package token

import "github.com/bastiangx/listfield/pkg/span"

// DefaultSeparator is the list separator used when none is configured.
const DefaultSeparator = ';'

// Tokenizer locates the relevant range of the text where the user is
// typing. Offsets are byte offsets; implementations must keep
// FindTokenStart(text, c) in [0, c] and FindTokenEnd(text, c) in [c, len(text)].
type Tokenizer interface {
	// FindTokenStart returns the start of the token that ends at cursor.
	FindTokenStart(text string, cursor int) int

	// FindTokenEnd returns the end of the token that begins at cursor,
	// exclusive of the separator.
	FindTokenEnd(text string, cursor int) int

	// TerminateToken returns text, modified if necessary, so that it ends
	// with a token terminator. Spans on the input survive over the
	// unchanged prefix only.
	TerminateToken(text span.Text) span.Text
}

// SingleChar tokenizes lists where items are separated by a single
// character and zero or more spaces.
type SingleChar struct {
	sep byte
}

// NewSingleChar returns a tokenizer using the default `;` separator.
func NewSingleChar() SingleChar {
	return SingleChar{sep: DefaultSeparator}
}

// NewSingleCharSep returns a tokenizer with a custom separator character.
func NewSingleCharSep(sep byte) SingleChar {
	return SingleChar{sep: sep}
}

// Separator returns the configured separator character.
func (t SingleChar) Separator() byte {
	return t.sep
}

// FindTokenStart scans backward from cursor to the nearest separator, then
// forward over the run of spaces that follows it, never past the cursor.
// Spaces typed after a separator belong to formatting, not to the token.
func (t SingleChar) FindTokenStart(text string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}
	i := cursor
	for i > 0 && text[i-1] != t.sep {
		i--
	}
	for i < cursor && text[i] == ' ' {
		i++
	}
	return i
}

// FindTokenEnd scans forward from cursor to the next separator or the end
// of the text. Trailing spaces are left alone; TerminateToken owns that.
func (t SingleChar) FindTokenEnd(text string, cursor int) int {
	if cursor < 0 {
		cursor = 0
	}
	i := cursor
	for i < len(text) {
		if text[i] == t.sep {
			return i
		}
		i++
	}
	return len(text)
}

// TerminateToken ensures text ends, after discarding trailing spaces, with
// the separator. Idempotent: already-terminated text comes back unchanged.
// The separator is appended to the untrimmed text and carries no spans.
func (t SingleChar) TerminateToken(text span.Text) span.Text {
	s := text.String()
	i := len(s)
	for i > 0 && s[i-1] == ' ' {
		i--
	}
	if i > 0 && s[i-1] == t.sep {
		return text
	}
	return text.Append(string(t.sep))
}
