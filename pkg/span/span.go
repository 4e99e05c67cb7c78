/*
Package span provides formatting-span aware text values and a mutable
span-carrying buffer.

A Span is a metadata range attached to a sub-range of some text, independent
of token boundaries. Text is an immutable string value that may carry spans;
Buffer is the mutable, selection-carrying host buffer the editing engine
reads from and replaces into. All offsets are byte offsets.
*/
package span

// Span marks the half-open range [Start, End) of a text with an attribute.
// The attribute is opaque to this package; hosts attach whatever rendering
// or bookkeeping data they need.
type Span struct {
	Start int
	End   int
	Attr  any
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text is an immutable string that may carry formatting spans.
// The zero value is the empty text with no spans.
type Text struct {
	str   string
	spans []Span
}

// Plain wraps a string as a Text with no spans.
func Plain(s string) Text {
	return Text{str: s}
}

// New builds a Text carrying the given spans. Spans reaching outside the
// string are clamped; empty or inverted spans are dropped.
func New(s string, spans ...Span) Text {
	t := Text{str: s}
	for _, sp := range spans {
		if sp.Start < 0 {
			sp.Start = 0
		}
		if sp.End > len(s) {
			sp.End = len(s)
		}
		if sp.Start >= sp.End {
			continue
		}
		t.spans = append(t.spans, sp)
	}
	return t
}

// String returns the underlying string.
func (t Text) String() string {
	return t.str
}

// Len returns the length of the underlying string in bytes.
func (t Text) Len() int {
	return len(t.str)
}

// Spans returns a copy of the attached spans.
func (t Text) Spans() []Span {
	if len(t.spans) == 0 {
		return nil
	}
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Append returns a new Text with s appended. Existing spans cover the
// unchanged prefix only; the appended bytes carry no spans.
func (t Text) Append(s string) Text {
	return Text{str: t.str + s, spans: t.spans}
}
