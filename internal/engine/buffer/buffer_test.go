package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kilua/internal/engine/syntax"
)

func cSyntax() *syntax.Highlighter {
	def := syntax.NewDefinition("c").
		WithKeywords([]string{"if", "int|"}).
		WithComments("//", "/*", "*/")
	return syntax.New(def)
}

func load(t *testing.T, text string, opts ...Option) *RowStore {
	t.Helper()
	s := NewRowStore(opts...)
	if err := s.Load(strings.NewReader(text)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func checkInvariants(t *testing.T, s *RowStore) {
	t.Helper()
	for i := 0; i < s.Len(); i++ {
		r := s.Row(i)
		if r.Index() != i {
			t.Errorf("row %d has index %d", i, r.Index())
		}
		if len(r.Rendered()) < len(r.Raw()) {
			t.Errorf("row %d: rendered shorter than raw", i)
		}
		if len(r.Rendered()) != len(r.Highlight()) {
			t.Errorf("row %d: %d rendered runes, %d tags", i, len(r.Rendered()), len(r.Highlight()))
		}
	}
}

func rowStrings(s *RowStore) []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.Row(i).String()
	}
	return out
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "\n\nx", []string{"", "", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := load(t, tt.text)
			got := rowStrings(s)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("rows = %q, want %q", got, tt.want)
			}
			if s.Dirty() != 0 {
				t.Errorf("Dirty() = %d after load", s.Dirty())
			}
			checkInvariants(t, s)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLoadError(t *testing.T) {
	s := NewRowStore()
	if err := s.Load(failingReader{}); err == nil {
		t.Error("expected read error")
	}
}

func TestText(t *testing.T) {
	s := load(t, "one\ntwo")
	if got := s.Text(); got != "one\ntwo\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestTabsRendered(t *testing.T) {
	s := load(t, "\tx\nab\tc")
	if got := string(s.Row(0).Rendered()); got != "        x" {
		t.Errorf("row 0 rendered %q", got)
	}
	if got := string(s.Row(1).Rendered()); got != "ab      c" {
		t.Errorf("row 1 rendered %q", got)
	}

	s = load(t, "\tx", WithTabStop(4))
	if got := string(s.Row(0).Rendered()); got != "    x" {
		t.Errorf("tab stop 4 rendered %q", got)
	}
}

func TestInsertRow(t *testing.T) {
	s := load(t, "a\nb")
	s.InsertRow(1, "mid")
	s.InsertRow(99, "end")
	s.InsertRow(-1, "never")
	s.InsertRow(0, "start")

	want := "start|a|mid|b|end"
	if got := strings.Join(rowStrings(s), "|"); got != want {
		t.Errorf("rows = %q, want %q", got, want)
	}
	if s.Dirty() != 3 {
		t.Errorf("Dirty() = %d, want 3", s.Dirty())
	}
	checkInvariants(t, s)
}

func TestDeleteRow(t *testing.T) {
	s := load(t, "a\nb\nc")
	s.DeleteRow(1)
	s.DeleteRow(5)
	s.DeleteRow(-1)

	if got := strings.Join(rowStrings(s), "|"); got != "a|c" {
		t.Errorf("rows = %q", got)
	}
	if s.Dirty() != 1 {
		t.Errorf("Dirty() = %d, want 1", s.Dirty())
	}
	checkInvariants(t, s)
}

func TestInsertCharPads(t *testing.T) {
	s := load(t, "ab")
	s.InsertChar(0, 5, 'x')
	if got := s.Row(0).String(); got != "ab   x" {
		t.Errorf("row = %q", got)
	}

	s.InsertChar(2, 0, 'y')
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if got := s.Row(2).String(); got != "y" {
		t.Errorf("padded row = %q", got)
	}
	checkInvariants(t, s)
}

func TestInsertDeleteIdentity(t *testing.T) {
	tests := []struct {
		text string
		col  int
	}{
		{"hello", 0},
		{"hello", 2},
		{"hello", 5},
		{"\tindent", 1},
		{"", 0},
	}

	for _, tt := range tests {
		s := load(t, tt.text)
		s.InsertChar(0, tt.col, 'Z')
		checkInvariants(t, s)
		if !s.DeleteChar(0, tt.col) {
			t.Fatalf("DeleteChar(%d) on %q removed nothing", tt.col, tt.text)
		}
		if got := s.Row(0).String(); got != tt.text {
			t.Errorf("insert/delete at %d: %q, want %q", tt.col, got, tt.text)
		}
		checkInvariants(t, s)
	}
}

func TestDeleteCharOutOfRange(t *testing.T) {
	s := load(t, "ab")
	for _, pos := range [][2]int{{0, 2}, {0, -1}, {1, 0}, {-1, 0}} {
		if s.DeleteChar(pos[0], pos[1]) {
			t.Errorf("DeleteChar(%d, %d) should be a no-op", pos[0], pos[1])
		}
	}
	if s.Dirty() != 0 {
		t.Errorf("no-ops changed the dirty counter")
	}
}

func TestSplitJoinIdentity(t *testing.T) {
	for col := 0; col <= 6; col++ {
		s := load(t, "x\nfoo\tbar\ny")
		s.SplitRow(1, col)
		if s.Len() != 4 {
			t.Fatalf("split at %d: Len() = %d", col, s.Len())
		}
		checkInvariants(t, s)

		at, ok := s.JoinWithPrevious(2)
		if !ok {
			t.Fatalf("join after split at %d failed", col)
		}
		if at != col {
			t.Errorf("join returned %d, want %d", at, col)
		}
		if got := strings.Join(rowStrings(s), "|"); got != "x|foo\tbar|y" {
			t.Errorf("split/join at %d: %q", col, got)
		}
		checkInvariants(t, s)
	}
}

func TestSplitPastEnd(t *testing.T) {
	s := load(t, "a")
	s.SplitRow(1, 0)
	if s.Len() != 2 || s.Row(1).Len() != 0 {
		t.Errorf("rows = %q", rowStrings(s))
	}
	s.SplitRow(5, 0)
	if s.Len() != 2 {
		t.Error("split far past the end should be ignored")
	}
}

func TestJoinFirstRow(t *testing.T) {
	s := load(t, "a\nb")
	if _, ok := s.JoinWithPrevious(0); ok {
		t.Error("row 0 has no predecessor")
	}
}

func TestAppendText(t *testing.T) {
	s := load(t, "ab")
	s.AppendText(0, "\tc")
	s.AppendText(3, "ignored")
	if got := s.Row(0).String(); got != "ab\tc" {
		t.Errorf("row = %q", got)
	}
	if got := string(s.Row(0).Rendered()); got != "ab      c" {
		t.Errorf("rendered = %q", got)
	}
}

func TestAt(t *testing.T) {
	s := load(t, "ab")
	if s.At(0, 1) != 'b' {
		t.Error("At(0, 1) should be 'b'")
	}
	if s.At(0, 2) != '\n' || s.At(3, 0) != '\n' {
		t.Error("past the end should read as newline")
	}
}

func TestBlockCommentPropagation(t *testing.T) {
	s := load(t, "/* start\nmiddle\nend */ code", WithHighlighter(cSyntax()))

	if !s.Row(0).OpenComment() || !s.Row(1).OpenComment() || s.Row(2).OpenComment() {
		t.Fatal("unexpected comment state after load")
	}
	for _, tag := range s.Row(1).Highlight() {
		if tag != syntax.BlockComment {
			t.Fatalf("middle row tag %v", tag)
		}
	}

	// Removing the opening token un-comments the following rows.
	s.DeleteChar(0, 0)
	if s.Row(0).OpenComment() || s.Row(1).OpenComment() {
		t.Error("comment state should be cleared forward")
	}
	for _, tag := range s.Row(1).Highlight() {
		if tag != syntax.Normal {
			t.Fatalf("middle row tag %v after removing the opener", tag)
		}
	}

	// Inserting it again restores the comment.
	s.InsertChar(0, 0, '/')
	if !s.Row(1).OpenComment() {
		t.Error("comment should propagate again")
	}
	checkInvariants(t, s)
}

func TestPropagationAcrossStructuralEdits(t *testing.T) {
	s := load(t, "a\nb\nc", WithHighlighter(cSyntax()))

	s.InsertRow(0, "/*")
	for i := 0; i < s.Len(); i++ {
		if !s.Row(i).OpenComment() {
			t.Errorf("row %d should be inside the comment", i)
		}
	}

	s.DeleteRow(0)
	for i := 0; i < s.Len(); i++ {
		if s.Row(i).OpenComment() {
			t.Errorf("row %d should not be inside a comment", i)
		}
	}

	s.AppendText(0, " /*")
	s.SplitRow(0, 1)
	for i := 0; i < s.Len(); i++ {
		want := i > 0
		if s.Row(i).OpenComment() != want {
			t.Errorf("after split row %d open = %v", i, !want)
		}
	}

	if _, ok := s.JoinWithPrevious(1); !ok {
		t.Fatal("join failed")
	}
	if !s.Row(0).OpenComment() || !s.Row(2).OpenComment() {
		t.Error("comment state lost after join")
	}
	checkInvariants(t, s)
}

func TestSetHighlighter(t *testing.T) {
	s := load(t, "if x")
	if s.Row(0).Highlight()[0] != syntax.Normal {
		t.Fatal("no highlighter should mean Normal")
	}
	s.SetHighlighter(cSyntax())
	if s.Row(0).Highlight()[0] != syntax.Keyword1 {
		t.Error("SetHighlighter should rehighlight")
	}
	s.SetHighlighter(nil)
	if s.Row(0).Highlight()[0] != syntax.Normal {
		t.Error("nil highlighter should turn highlighting off")
	}
}

func TestMatchOverlay(t *testing.T) {
	s := load(t, "if foo", WithHighlighter(cSyntax()))
	before := append([]syntax.Tag(nil), s.Row(0).Highlight()...)

	s.SetMatch(0, 3, 3)
	hl := s.Row(0).Highlight()
	for i := 3; i < 6; i++ {
		if hl[i] != syntax.Match {
			t.Fatalf("tag %d = %v, want Match", i, hl[i])
		}
	}

	s.ClearMatch()
	for i, tag := range s.Row(0).Highlight() {
		if tag != before[i] {
			t.Errorf("tag %d = %v after clear, want %v", i, tag, before[i])
		}
	}
}

func TestLongCascade(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("x\n")
	for i := 0; i < 5000; i++ {
		sb.WriteString("line\n")
	}
	s := load(t, sb.String(), WithHighlighter(cSyntax()))

	s.InsertChar(0, 1, '*')
	s.InsertChar(0, 1, '/')
	if !s.Row(s.Len() - 1).OpenComment() {
		t.Error("comment should reach the last row")
	}
}

func TestRenderedKeepsNonPrintable(t *testing.T) {
	s := load(t, "a\x01\tb", WithHighlighter(cSyntax()))
	checkInvariants(t, s)

	row := s.Row(0)
	rendered := row.Rendered()
	if want := "a\x01      b"; string(rendered) != want {
		t.Fatalf("rendered = %q, want %q", string(rendered), want)
	}
	if got := row.Highlight()[1]; got != syntax.NonPrintable {
		t.Errorf("tag of \\x01 = %v, want NonPrintable", got)
	}
}
