package span

// Buffer is a mutable text buffer with formatting spans and a selection
// end. It is the default implementation of the accessor the editing engine
// consumes; hosts with their own text storage can implement the same
// methods instead.
//
// Buffer is not safe for concurrent use. The engine expects events to be
// delivered serially on one logical thread.
type Buffer struct {
	text  string
	spans []Span
	sel   int
}

// NewBuffer creates a buffer with initial content and the selection at the
// end of the text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, sel: len(text)}
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// String returns the whole buffer content.
func (b *Buffer) String() string {
	return b.text
}

// Read returns the substring [start, end), clamped into the buffer.
func (b *Buffer) Read(start, end int) string {
	start, end = b.clampRange(start, end)
	return b.text[start:end]
}

// SelectionEnd returns the current cursor offset.
func (b *Buffer) SelectionEnd() int {
	return b.sel
}

// SetSelection moves the cursor, clamping it into [0, Len()].
func (b *Buffer) SetSelection(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.text) {
		pos = len(b.text)
	}
	b.sel = pos
}

// AddSpan attaches a formatting span to the buffer. Out-of-range spans are
// clamped, empty ones dropped.
func (b *Buffer) AddSpan(s Span) {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > len(b.text) {
		s.End = len(b.text)
	}
	if s.Start >= s.End {
		return
	}
	b.spans = append(b.spans, s)
}

// Spans returns a copy of the buffer's spans.
func (b *Buffer) Spans() []Span {
	if len(b.spans) == 0 {
		return nil
	}
	out := make([]Span, len(b.spans))
	copy(out, b.spans)
	return out
}

// Replace substitutes the range [start, end) with repl. Spans entirely
// before start keep their offsets, spans entirely at or after end shift by
// the length delta, and spans touching the replaced range are dropped.
// Spans carried by repl are attached relative to start.
//
// The cursor moves to the end of the replacement when it was inside the
// replaced range, and shifts with the tail otherwise.
func (b *Buffer) Replace(start, end int, repl Text) {
	start, end = b.clampRange(start, end)
	delta := repl.Len() - (end - start)

	kept := b.spans[:0]
	for _, s := range b.spans {
		switch {
		case s.End <= start:
			kept = append(kept, s)
		case s.Start >= end:
			s.Start += delta
			s.End += delta
			kept = append(kept, s)
		}
	}
	b.spans = kept
	for _, s := range repl.Spans() {
		b.spans = append(b.spans, Span{Start: s.Start + start, End: s.End + start, Attr: s.Attr})
	}

	b.text = b.text[:start] + repl.String() + b.text[end:]

	switch {
	case b.sel >= end:
		b.sel += delta
	case b.sel > start:
		b.sel = start + repl.Len()
	}
	if b.sel > len(b.text) {
		b.sel = len(b.text)
	}
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start > end {
		start = end
	}
	return start, end
}
