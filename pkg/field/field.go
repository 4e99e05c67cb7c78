/*
Package field implements the multi-token editing engine behind list-style
autocomplete entry (semicolon separated values typed into one text field).

The engine never owns the text: it reads ranges and requests range
replacements through the Buffer accessor the host provides. A Tokenizer
locates the token under the cursor, a Validator repairs committed tokens,
and a suggest.Source supplies candidates for the active token. All
operations are synchronous responses to host events (text changed,
suggestion chosen, focus lost) and must be delivered serially on one
logical thread.
*/
package field

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/listfield/pkg/span"
	"github.com/bastiangx/listfield/pkg/suggest"
	"github.com/bastiangx/listfield/pkg/token"
)

// Buffer is the host text accessor the engine edits through. Offsets are
// byte offsets; implementations clamp out-of-range arguments rather than
// panic. span.Buffer is the default implementation.
type Buffer interface {
	Read(start, end int) string
	Replace(start, end int, text span.Text)
	Len() int
	SelectionEnd() int
}

// Validator tests a committed token and proposes a corrected replacement.
// FixText output is accepted as-is and never re-validated.
type Validator interface {
	IsValid(token string) bool
	FixText(token string) string
}

// Marker records a completed suggestion substitution: the range the
// terminated suggestion now occupies and the text it replaced. It is the
// policy hook for undo-on-immediate-backspace: a host that sees a
// single-character deletion right after the substitution may restore
// Original over [Start, End) instead of deleting one character. The engine
// itself never acts on it.
type Marker struct {
	Start    int
	End      int
	Original string
}

// Field is the editing engine for one host text field.
type Field struct {
	buf       Buffer
	tokenizer token.Tokenizer
	validator Validator
	source    suggest.Source
	threshold int
	querySeq  uint64

	onSuggestions func([]suggest.Suggestion)
	onDismiss     func()
}

// New creates an engine over the given buffer with a threshold of 1 and no
// tokenizer, validator or source configured. Without a tokenizer the
// engine behaves as a plain single-value autocomplete field.
func New(buf Buffer) *Field {
	return &Field{buf: buf, threshold: 1}
}

// SetTokenizer configures the tokenizer that determines the relevant range
// of the text where the user is typing. Passing nil reverts to whole-text
// behaviour.
func (f *Field) SetTokenizer(t token.Tokenizer) {
	f.tokenizer = t
}

// SetValidator configures the validator used by PerformValidation. Passing
// nil disables validation.
func (f *Field) SetValidator(v Validator) {
	f.validator = v
}

// SetSource configures the suggestion source queried by PerformFiltering.
func (f *Field) SetSource(s suggest.Source) {
	f.source = s
}

// SetThreshold sets the minimum active-token length before a suggestion
// query is issued. Values below 1 clamp to 1.
func (f *Field) SetThreshold(n int) {
	if n < 1 {
		n = 1
	}
	f.threshold = n
}

// OnSuggestions registers the callback that receives ranked candidates for
// the active token. Stale deliveries superseded by a newer query never
// reach it.
func (f *Field) OnSuggestions(fn func([]suggest.Suggestion)) {
	f.onSuggestions = fn
}

// OnDismiss registers the callback invoked when the active token is too
// short to filter and any open suggestion view must go away.
func (f *Field) OnDismiss(fn func()) {
	f.onDismiss = fn
}

// EnoughToFilter reports whether the token around the cursor is long
// enough to trigger a suggestion query. A negative selection end fails
// closed. Without a tokenizer the whole text length is measured instead.
func (f *Field) EnoughToFilter() bool {
	end := f.buf.SelectionEnd()
	if end < 0 {
		return false
	}
	text := f.buf.Read(0, f.buf.Len())
	if end > len(text) {
		end = len(text)
	}
	if f.tokenizer == nil {
		return len(text) >= f.threshold
	}
	start := f.tokenizer.FindTokenStart(text, end)
	return end-start >= f.threshold
}

// PerformFiltering re-evaluates the active token and takes exactly one of
// two actions: submit the token prefix to the suggestion source, or
// dismiss the suggestion view and clear the source. Hosts call this on
// every text-change and selection-change event, because the active token
// boundaries shift as the user types.
func (f *Field) PerformFiltering() {
	text := f.buf.Read(0, f.buf.Len())
	if f.tokenizer == nil {
		if len(text) >= f.threshold {
			f.submit(text)
		} else {
			f.dismiss()
		}
		return
	}
	if !f.EnoughToFilter() {
		f.dismiss()
		return
	}
	end := f.buf.SelectionEnd()
	if end > len(text) {
		end = len(text)
	}
	start := f.tokenizer.FindTokenStart(text, end)
	f.submit(text[start:end])
}

// submit issues a sequence-numbered query. A delivery that arrives after a
// newer query (or a dismissal) superseded it is dropped.
func (f *Field) submit(prefix string) {
	if f.source == nil {
		return
	}
	f.querySeq++
	seq := f.querySeq
	log.Debugf("filtering %q (seq %d)", prefix, seq)
	f.source.Query(prefix, func(results []suggest.Suggestion) {
		if seq != f.querySeq {
			log.Debugf("dropping stale suggestions for seq %d (current %d)", seq, f.querySeq)
			return
		}
		if f.onSuggestions != nil {
			f.onSuggestions(results)
		}
	})
}

// dismiss closes the suggestion view, supersedes any outstanding query and
// tells the source to clear cached results.
func (f *Field) dismiss() {
	f.querySeq++
	if f.onDismiss != nil {
		f.onDismiss()
	}
	if f.source != nil {
		f.source.Clear()
	}
}

// SetOrReplaceText performs the completion for a chosen suggestion:
// without a tokenizer the whole buffer becomes the suggestion, otherwise
// the range from the token start to the selection end is replaced by the
// terminated suggestion. Spans outside the replaced range survive; spans
// inside it are dropped. The returned Marker describes the substitution.
func (f *Field) SetOrReplaceText(suggestion string) Marker {
	text := f.buf.Read(0, f.buf.Len())
	if f.tokenizer == nil {
		f.buf.Replace(0, len(text), span.Plain(suggestion))
		return Marker{Start: 0, End: len(suggestion), Original: text}
	}
	log.Debugf("setOrReplaceText %q", suggestion)
	end := f.buf.SelectionEnd()
	if end < 0 {
		end = 0
	}
	if end > len(text) {
		end = len(text)
	}
	start := f.tokenizer.FindTokenStart(text, end)
	original := text[start:end]
	repl := f.tokenizer.TerminateToken(span.Plain(suggestion))
	f.buf.Replace(start, end, repl)
	return Marker{Start: start, End: start + repl.Len(), Original: original}
}
