package span

import "testing"

func TestReplaceText(t *testing.T) {
	testCases := []struct {
		text       string
		start, end int
		repl       string
		want       string
		desc       string
	}{
		{"highway;resi", 8, 12, "residential;", "highway;residential;", "replace token"},
		{"abc", 1, 2, "", "ac", "delete"},
		{"abc", 3, 3, "d", "abcd", "append"},
		{"abc", 0, 3, "", "", "clear"},
		{"abc", -5, 99, "x", "x", "clamped range"},
	}

	for _, tc := range testCases {
		b := NewBuffer(tc.text)
		b.Replace(tc.start, tc.end, Plain(tc.repl))
		if b.String() != tc.want {
			t.Errorf("%s: Replace(%d, %d, %q) on %q = %q, want %q",
				tc.desc, tc.start, tc.end, tc.repl, tc.text, b.String(), tc.want)
		}
	}
}

func TestReplaceSpans(t *testing.T) {
	b := NewBuffer("highway;resi")
	b.AddSpan(Span{Start: 0, End: 7, Attr: "key"})    // before the edit
	b.AddSpan(Span{Start: 8, End: 12, Attr: "draft"}) // inside the edit

	b.Replace(8, 12, Plain("residential;"))

	spans := b.Spans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 7 || spans[0].Attr != "key" {
		t.Errorf("surviving span = %+v, want [0, 7) key", spans[0])
	}
}

func TestReplaceShiftsTrailingSpans(t *testing.T) {
	b := NewBuffer("ab;cd")
	b.AddSpan(Span{Start: 3, End: 5, Attr: "tail"})

	b.Replace(0, 2, Plain("wxyz"))
	if b.String() != "wxyz;cd" {
		t.Fatalf("text = %q", b.String())
	}
	spans := b.Spans()
	if len(spans) != 1 || spans[0].Start != 5 || spans[0].End != 7 {
		t.Errorf("trailing span = %+v, want [5, 7)", spans[0])
	}
}

func TestReplaceCarriesReplacementSpans(t *testing.T) {
	b := NewBuffer("a;b")
	repl := New("XY", Span{Start: 0, End: 2, Attr: "new"})
	b.Replace(2, 3, repl)

	if b.String() != "a;XY" {
		t.Fatalf("text = %q", b.String())
	}
	spans := b.Spans()
	if len(spans) != 1 || spans[0].Start != 2 || spans[0].End != 4 {
		t.Errorf("replacement span = %+v, want [2, 4)", spans[0])
	}
}

func TestSelectionTracking(t *testing.T) {
	b := NewBuffer("a;b;c")
	b.SetSelection(99)
	if b.SelectionEnd() != 5 {
		t.Errorf("SetSelection should clamp to length, got %d", b.SelectionEnd())
	}

	// cursor after the edit shifts with the tail
	b.SetSelection(5)
	b.Replace(0, 1, Plain("xyz"))
	if b.SelectionEnd() != 7 {
		t.Errorf("cursor after edit = %d, want 7", b.SelectionEnd())
	}

	// cursor inside the replaced range lands after the replacement
	b = NewBuffer("a;resi")
	b.SetSelection(4)
	b.Replace(2, 6, Plain("residential;"))
	if b.SelectionEnd() != 14 {
		t.Errorf("cursor inside edit = %d, want 14", b.SelectionEnd())
	}
}

func TestTextAppend(t *testing.T) {
	in := New("ab", Span{Start: 0, End: 2, Attr: 1})
	out := in.Append(";")
	if out.String() != "ab;" {
		t.Fatalf("Append = %q", out.String())
	}
	spans := out.Spans()
	if len(spans) != 1 || spans[0].End != 2 {
		t.Errorf("appended byte must carry no span: %+v", spans)
	}
}
