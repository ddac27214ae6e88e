package syntax

import (
	"testing"
)

// memDoc is an in-memory Document for tests.
type memDoc struct {
	rows [][]rune
	tags [][]Tag
	open []bool
}

func newMemDoc(lines ...string) *memDoc {
	d := &memDoc{}
	for _, l := range lines {
		d.rows = append(d.rows, []rune(l))
		d.tags = append(d.tags, nil)
		d.open = append(d.open, false)
	}
	return d
}

func (d *memDoc) Len() int               { return len(d.rows) }
func (d *memDoc) Rendered(i int) []rune  { return d.rows[i] }
func (d *memDoc) OpenComment(i int) bool { return d.open[i] }
func (d *memDoc) SetHighlight(i int, tags []Tag, open bool) bool {
	was := d.open[i]
	d.tags[i] = tags
	d.open[i] = open
	return was
}

func (d *memDoc) highlightAll(h *Highlighter) {
	for i := range d.rows {
		h.Update(d, i)
	}
}

func cDefinition() *Definition {
	d := NewDefinition("c")
	d.Keywords = []string{"if", "return", "int|"}
	d.LineOpen = "//"
	d.BlockOpen = "/*"
	d.BlockClose = "*/"
	return d
}

func tagsOf(s string) []Tag {
	m := map[byte]Tag{
		'.': Normal, 'C': Comment, 'B': BlockComment, 'K': Keyword1,
		'k': Keyword2, 'S': String, 'N': Number, 'P': NonPrintable,
	}
	out := make([]Tag, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = m[s[i]]
	}
	return out
}

func equalTags(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHighlighterRow(t *testing.T) {
	h := New(cDefinition())

	tests := []struct {
		name string
		line string
		want string
		open bool
	}{
		{"empty", "", "", false},
		{"plain", "abc", "...", false},
		{"keyword", "if (x) int y; iffy", "KK.....kkk........", false},
		{"keyword at end", "return", "KKKKKK", false},
		{"leading space", "  if", "..KK", false},
		{"string and numbers", `"ab" 12.5 x1`, "SSSS.NNNN...", false},
		{"escaped quote", `"a\"b"`, "SSSSSS", false},
		{"single quote", `'x'`, "SSS", false},
		{"line comment", "x // hi", "..CCCCC", false},
		{"line comment needs boundary", "a//b", "....", false},
		{"comment token in string", `"//"`, "SSSS", false},
		{"block comment closed", "/* a */ 1", "BBBBBBB.N", false},
		{"block comment open", "x /* a", "..BBBB", true},
		{"block open in string", `"/*" x`, "SSSS..", false},
		{"non printable", "a\x01b", ".P.", false},
		{"wide rune", "a世", ".P", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, open := h.Row([]rune(tt.line), false)
			if !equalTags(got, tagsOf(tt.want)) {
				t.Errorf("Row(%q) = %v, want %v", tt.line, got, tagsOf(tt.want))
			}
			if open != tt.open {
				t.Errorf("Row(%q) open = %v, want %v", tt.line, open, tt.open)
			}
			if len(got) != len([]rune(tt.line)) {
				t.Errorf("Row(%q) returned %d tags for %d runes", tt.line, len(got), len([]rune(tt.line)))
			}
		})
	}
}

func TestHighlighterFlags(t *testing.T) {
	def := cDefinition().WithFlag(HighlightStrings, false).WithFlag(HighlightNumbers, false)
	h := New(def)

	got, _ := h.Row([]rune(`"a" 42`), false)
	if !equalTags(got, tagsOf("......")) {
		t.Errorf("disabled flags: got %v", got)
	}
}

func TestHighlighterNilDefinition(t *testing.T) {
	h := New(nil)
	got, open := h.Row([]rune("/* if 1"), true)
	if !equalTags(got, tagsOf(".......")) {
		t.Errorf("nil definition: got %v", got)
	}
	if open {
		t.Error("nil definition should never report an open comment")
	}
	if h.Definition() != nil {
		t.Error("Definition() should be nil")
	}
}

func TestHighlighterInvalidDefinition(t *testing.T) {
	def := NewDefinition("broken")
	def.BlockOpen = "/*"
	h := New(def)

	if h.Err() == nil {
		t.Fatal("expected validation error")
	}
	got, _ := h.Row([]rune("/* x"), false)
	if !equalTags(got, tagsOf("....")) {
		t.Errorf("invalid definition should degrade to Normal, got %v", got)
	}
}

func TestBlockCommentAcrossRows(t *testing.T) {
	doc := newMemDoc("/* start", "middle", "end */ code")
	h := New(cDefinition())
	doc.highlightAll(h)

	if !doc.open[0] {
		t.Error("row 0 should end inside a block comment")
	}
	if !equalTags(doc.tags[1], tagsOf("BBBBBB")) {
		t.Errorf("row 1 = %v, want all BlockComment", doc.tags[1])
	}
	if !equalTags(doc.tags[2], tagsOf("BBBBBB.....")) {
		t.Errorf("row 2 = %v", doc.tags[2])
	}
	if doc.open[2] {
		t.Error("row 2 should close the comment")
	}
}

func TestUpdatePropagatesForward(t *testing.T) {
	doc := newMemDoc("/* start", "middle", "end */ code", "tail")
	h := New(cDefinition())

	if n := h.Update(doc, 0); n != 3 {
		t.Errorf("first Update scanned %d rows, want 3", n)
	}

	// Remove the opening token.
	doc.rows[0] = []rune("x start")
	n := h.Update(doc, 0)
	if n != 3 {
		t.Errorf("Update after edit scanned %d rows, want 3", n)
	}
	if !equalTags(doc.tags[1], tagsOf("......")) {
		t.Errorf("row 1 should be Normal after the edit, got %v", doc.tags[1])
	}
	if !equalTags(doc.tags[2], tagsOf("...........")) {
		t.Errorf("row 2 should be Normal after the edit, got %v", doc.tags[2])
	}
}

func TestUpdateStopsWhenStateSettles(t *testing.T) {
	doc := newMemDoc("a", "b", "c")
	h := New(cDefinition())
	doc.highlightAll(h)

	if n := h.Update(doc, 0); n != 1 {
		t.Errorf("Update scanned %d rows, want 1", n)
	}
}

func TestUpdateEmptyRowCarriesState(t *testing.T) {
	doc := newMemDoc("/*", "", "x")
	h := New(cDefinition())
	h.Update(doc, 0)

	if !doc.open[1] {
		t.Error("empty row should inherit the open comment")
	}
	if !equalTags(doc.tags[2], tagsOf("B")) {
		t.Errorf("row 2 = %v, want BlockComment", doc.tags[2])
	}
}

func TestUpdateLongCascade(t *testing.T) {
	lines := make([]string, 10000)
	lines[0] = "/*"
	for i := 1; i < len(lines); i++ {
		lines[i] = "x"
	}
	doc := newMemDoc(lines...)
	h := New(cDefinition())

	if n := h.Update(doc, 0); n != len(lines) {
		t.Errorf("scanned %d rows, want %d", n, len(lines))
	}
	if doc.tags[len(lines)-1][0] != BlockComment {
		t.Error("last row should be inside the comment")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \t\x00:{},.()+-/*=~%[];<>|&" {
		if !IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = false", r)
		}
	}
	for _, r := range "aZ_9\"'" {
		if IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = true", r)
		}
	}
}

func TestTagString(t *testing.T) {
	if Keyword2.String() != "Keyword2" {
		t.Errorf("Keyword2.String() = %q", Keyword2.String())
	}
	if !BlockComment.IsComment() || Number.IsComment() {
		t.Error("IsComment mismatch")
	}
}
