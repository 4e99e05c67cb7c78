package field

import (
	"strings"

	"github.com/bastiangx/listfield/pkg/span"
)

// PerformValidation validates each token of the text individually, walking
// the buffer from its end toward its start so earlier edits never shift
// the offsets of segments not yet visited. Empty and all-whitespace
// segments are deleted together with their terminating separator; invalid
// segments are replaced, separator included, by the terminated fix. A fix
// that is itself empty collapses to a deletion so no stray separator is
// introduced.
//
// Without a tokenizer the whole buffer is validated as one value.
func (f *Field) PerformValidation() {
	if f.validator == nil {
		return
	}
	if f.tokenizer == nil {
		text := f.buf.Read(0, f.buf.Len())
		if !f.validator.IsValid(text) {
			f.buf.Replace(0, len(text), span.Plain(f.validator.FixText(text)))
		}
		return
	}

	// Snapshot once: every edit happens at or right of the segment being
	// visited, so offsets left of it stay valid against the snapshot.
	text := f.buf.Read(0, f.buf.Len())
	right := len(text)
	for {
		start := f.tokenizer.FindTokenStart(text, right)
		// FindTokenStart skips the spaces after the separator; walk back
		// over them so the edit range covers the whole segment.
		left := start
		for left > 0 && text[left-1] == ' ' {
			left--
		}
		tok := text[left:right]

		// The segment owns its terminating separator, if it has one. A
		// token ending exactly at right means right sits on a separator.
		editEnd := right
		if right < len(text) && f.tokenizer.FindTokenEnd(text, right) == right {
			editEnd = right + 1
		}

		switch {
		case strings.TrimSpace(tok) == "":
			f.buf.Replace(left, editEnd, span.Text{})
		case !f.validator.IsValid(tok):
			fixed := f.validator.FixText(tok)
			if strings.TrimSpace(fixed) == "" {
				f.buf.Replace(left, editEnd, span.Text{})
			} else {
				f.buf.Replace(left, editEnd, f.tokenizer.TerminateToken(span.Plain(fixed)))
			}
		}

		if left == 0 {
			break
		}
		// step over the separator preceding this segment
		right = left - 1
	}
}
