package lua

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/kilua/internal/editor"
	"github.com/dshills/kilua/internal/engine/syntax"
	"github.com/dshills/kilua/internal/input/key"
)

// keyScreen feeds queued keys to interactive primitives.
type keyScreen struct {
	keys []key.Event
	err  error
}

func (s *keyScreen) Refresh() error { return nil }

func (s *keyScreen) ReadEvent() (key.Event, error) {
	if len(s.keys) == 0 {
		if s.err != nil {
			return key.Event{}, s.err
		}
		return key.Event{}, errors.New("out of keys")
	}
	ev := s.keys[0]
	s.keys = s.keys[1:]
	return ev, nil
}

func typed(text string, final key.Key) []key.Event {
	var evs []key.Event
	for _, r := range text {
		evs = append(evs, key.NewRuneEvent(r, 0))
	}
	return append(evs, key.NewSpecialEvent(final, 0))
}

func newTestHost(t *testing.T) (*Host, *editor.Editor) {
	t.Helper()
	ed := editor.New(editor.Options{Width: 40, Height: 10})
	host, err := NewHost(ed)
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	ed.SetSink(host)
	t.Cleanup(func() { _ = host.Close() })
	return host, ed
}

func run(t *testing.T, h *Host, code string) {
	t.Helper()
	if err := h.Eval(code); err != nil {
		t.Fatalf("Eval(%q) error = %v", code, err)
	}
}

func global(h *Host, name string) glua.LValue {
	return h.State().GetGlobal(name)
}

func TestPrimitivesRegistered(t *testing.T) {
	h, _ := newTestHost(t)
	names := []string{
		"at", "delete", "dirty", "down", "eol", "eof", "eval", "exit", "find",
		"get_line", "height", "kill", "key", "insert", "left", "right", "mark",
		"point", "page_down", "page_up", "open", "prompt", "save", "selection",
		"cut_selection", "set_syntax_keywords", "set_syntax_comments",
		"syntax_highlight_numbers", "syntax_highlight_strings", "status", "sof",
		"sol", "undo", "up", "width", "buffer", "buffers", "create_buffer",
		"buffer_name", "kill_buffer", "select_buffer",
	}
	for _, name := range names {
		if !h.State().HasFunction(name) {
			t.Errorf("primitive %q not registered", name)
		}
	}
}

func TestEditingPrimitives(t *testing.T) {
	h, ed := newTestHost(t)

	run(t, h, `insert("hello\nworld")`)
	if got := ed.Rows().Text(); got != "hello\nworld\n" {
		t.Fatalf("text = %q", got)
	}

	run(t, h, `sof(); right(); c = at(); rest = get_line(); d = dirty()`)
	if global(h, "c").String() != "e" {
		t.Errorf("at() = %v", global(h, "c"))
	}
	if global(h, "rest").String() != "ello" {
		t.Errorf("get_line() = %v", global(h, "rest"))
	}
	if global(h, "d") != glua.LTrue {
		t.Errorf("dirty() = %v", global(h, "d"))
	}

	run(t, h, `eol(); delete()`)
	if got := ed.Rows().Text(); got != "hell\nworld\n" {
		t.Errorf("after delete text = %q", got)
	}
	run(t, h, `undo()`)
	if got := ed.Rows().Text(); got != "hello\nworld\n" {
		t.Errorf("after undo text = %q", got)
	}

	run(t, h, `sof(); kill()`)
	if got := ed.Rows().Text(); got != "world\n" {
		t.Errorf("after kill text = %q", got)
	}
}

func TestPointAndMark(t *testing.T) {
	h, _ := newTestHost(t)
	run(t, h, `insert("abc\ndef")`)

	run(t, h, `px, py = point(2, 2)`)
	if global(h, "px").String() != "1" || global(h, "py").String() != "1" {
		t.Errorf("point(2,2) = %v, %v, want 1, 1", global(h, "px"), global(h, "py"))
	}

	run(t, h, `mx, my = mark()`)
	if global(h, "mx").String() != "-1" || global(h, "my").String() != "-1" {
		t.Errorf("unset mark = %v, %v", global(h, "mx"), global(h, "my"))
	}

	run(t, h, `mark(0, 0); point(1, 1); right(); right(); sel = selection()`)
	if got := global(h, "sel").String(); got != "abc" {
		t.Errorf("selection() = %q, want %q", got, "abc")
	}

	run(t, h, `mark(-1, -1); none = selection()`)
	if global(h, "none") != glua.LNil {
		t.Errorf("selection() without mark = %v", global(h, "none"))
	}

	run(t, h, `mark(0, 0); point(3, 1); cut_selection()`)
	if got := h.ed.Rows().Text(); got != "\ndef\n" {
		t.Errorf("after cut_selection text = %q", got)
	}
}

func TestScreenPrimitives(t *testing.T) {
	h, ed := newTestHost(t)

	run(t, h, `w, hgt = width(), height(); status("hi there")`)
	if global(h, "w").String() != "40" || global(h, "hgt").String() != "10" {
		t.Errorf("width/height = %v/%v", global(h, "w"), global(h, "hgt"))
	}
	if msg, _ := ed.StatusMessage(); msg != "hi there" {
		t.Errorf("status = %q", msg)
	}

	run(t, h, `exit()`)
	if !ed.Quitting() {
		t.Error("exit() did not quit")
	}
}

func TestPromptPrimitive(t *testing.T) {
	h, ed := newTestHost(t)

	ed.SetScreen(&keyScreen{keys: typed("answer", key.KeyEnter)})
	run(t, h, `got = prompt("Q: ")`)
	if global(h, "got").String() != "answer" {
		t.Errorf("prompt() = %v", global(h, "got"))
	}

	ed.SetScreen(&keyScreen{keys: typed("x", key.KeyEscape)})
	run(t, h, `got = prompt("Q: ")`)
	if global(h, "got") != glua.LNil {
		t.Errorf("cancelled prompt() = %v", global(h, "got"))
	}
}

func TestKeyPrimitive(t *testing.T) {
	h, ed := newTestHost(t)
	ed.SetScreen(&keyScreen{keys: []key.Event{key.NewCtrlEvent('x')}})

	run(t, h, `k = key()`)
	if global(h, "k").String() != "Ctrl+X" {
		t.Errorf("key() = %v", global(h, "k"))
	}
}

func TestFatalTerminalError(t *testing.T) {
	h, ed := newTestHost(t)
	ioErr := errors.New("read /dev/tty: input/output error")
	ed.SetScreen(&keyScreen{err: ioErr})

	err := h.Eval(`pcall(prompt, "x")`)
	if !errors.Is(err, ioErr) {
		t.Fatalf("Eval() error = %v, want terminal error", err)
	}
	var serr *ScriptError
	if errors.As(err, &serr) {
		t.Error("terminal error should not be a ScriptError")
	}

	if err := h.Eval(`x = 1`); err != nil {
		t.Errorf("fatal error leaked into next call: %v", err)
	}
}

func TestEvalPrimitive(t *testing.T) {
	h, ed := newTestHost(t)

	ed.SetScreen(&keyScreen{keys: typed(`evaluated = 7`, key.KeyEnter)})
	run(t, h, `eval()`)
	if global(h, "evaluated").String() != "7" {
		t.Errorf("evaluated = %v", global(h, "evaluated"))
	}

	ed.SetScreen(&keyScreen{keys: typed(`error("nope")`, key.KeyEnter)})
	run(t, h, `eval()`)
	if msg, _ := ed.StatusMessage(); !strings.Contains(msg, "nope") {
		t.Errorf("status = %q", msg)
	}
}

func TestFindPrimitive(t *testing.T) {
	h, ed := newTestHost(t)
	run(t, h, `insert("one\ntwo\nthree"); sof()`)

	ed.SetScreen(&keyScreen{keys: typed("thr", key.KeyEnter)})
	run(t, h, `find(); x, y = point()`)
	if global(h, "y").String() != "2" {
		t.Errorf("after find y = %v", global(h, "y"))
	}
}

func TestFilePrimitives(t *testing.T) {
	h, ed := newTestHost(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(src, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	run(t, h, `
		loaded, saved = nil, nil
		function on_loaded(name) loaded = name end
		function on_saved(name) saved = name end
	`)
	if err := h.Eval(`open("` + src + `")`); err != nil {
		t.Fatal(err)
	}
	if global(h, "loaded").String() != src {
		t.Errorf("on_loaded got %v", global(h, "loaded"))
	}
	if got := ed.Rows().Text(); got != "content\n" {
		t.Errorf("text = %q", got)
	}

	if err := h.Eval(`insert("new "); save("` + dst + `")`); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new content\n" {
		t.Errorf("saved %q", data)
	}
	if global(h, "saved").String() != dst {
		t.Errorf("on_saved got %v", global(h, "saved"))
	}
}

func TestOpenPrompts(t *testing.T) {
	h, ed := newTestHost(t)
	path := filepath.Join(t.TempDir(), "prompted.txt")

	ed.SetScreen(&keyScreen{keys: typed(path, key.KeyEnter)})
	run(t, h, `open()`)
	if ed.Filename() != path {
		t.Errorf("Filename() = %q, want %q", ed.Filename(), path)
	}
}

func TestBufferPrimitives(t *testing.T) {
	h, ed := newTestHost(t)

	run(t, h, `
		n0 = buffers()
		create_buffer("scratch")
		n1 = buffers()
		cur = buffer()
		name = buffer_name()
		buffer_name("renamed")
		buffer(0)
		first = buffer_name()
		found = select_buffer("renamed")
		missing = select_buffer("nope")
	`)

	checks := map[string]string{
		"n0":      "1",
		"n1":      "2",
		"cur":     "1",
		"name":    "scratch",
		"first":   "*Buffer-1*",
		"found":   "true",
		"missing": "false",
	}
	for name, want := range checks {
		if got := global(h, name).String(); got != want {
			t.Errorf("%s = %s, want %s", name, got, want)
		}
	}
	if ed.Current().Name() != "renamed" {
		t.Errorf("current buffer = %q", ed.Current().Name())
	}

	run(t, h, `kill_buffer(); after = buffers()`)
	if global(h, "after").String() != "1" {
		t.Errorf("buffers() after kill = %v", global(h, "after"))
	}
}

func TestSyntaxPrimitives(t *testing.T) {
	h, ed := newTestHost(t)
	run(t, h, `
		insert("local x = 10 -- note")
		set_syntax_keywords({"local", "x|"})
		set_syntax_comments("--", "--[[", "]]")
		syntax_highlight_numbers(0)
	`)

	def := ed.Current().Syntax()
	if def == nil {
		t.Fatal("no syntax definition installed")
	}
	if len(def.Keywords) != 2 || def.LineOpen != "--" {
		t.Errorf("definition = %+v", def)
	}
	if def.Flags.Has(syntax.HighlightNumbers) {
		t.Error("number highlighting still on")
	}

	run(t, h, `set_syntax_comments("--", "--[[", "")`)
	if msg, _ := ed.StatusMessage(); !strings.Contains(msg, "block comment") {
		t.Errorf("status = %q", msg)
	}
}

func TestEventHandlers(t *testing.T) {
	h, ed := newTestHost(t)

	// No handlers defined yet.
	if err := ed.HandleEvent(key.NewRuneEvent('a', 0)); err != nil {
		t.Fatalf("HandleEvent() without handler = %v", err)
	}

	run(t, h, `
		keys = {}
		idles = 0
		function on_key(k) table.insert(keys, k) end
		function on_idle() idles = idles + 1 end
	`)
	_ = ed.HandleEvent(key.NewRuneEvent('a', 0))
	_ = ed.HandleEvent(key.NewSpecialEvent(key.KeyEnter, 0))
	_ = ed.HandleEvent(key.Idle())

	run(t, h, `joined = table.concat(keys, ",")`)
	if got := global(h, "joined").String(); got != "a,Enter" {
		t.Errorf("keys = %q", got)
	}
	if global(h, "idles").String() != "1" {
		t.Errorf("idles = %v", global(h, "idles"))
	}
}

func TestHandlerError(t *testing.T) {
	h, ed := newTestHost(t)
	run(t, h, `function on_key(k) error("bad key " .. k) end`)

	err := ed.HandleEvent(key.NewRuneEvent('z', 0))
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("HandleEvent() error = %v, want ScriptError", err)
	}
	if serr.Op != "call" || serr.Name != HandlerKey {
		t.Errorf("ScriptError = %+v", serr)
	}
	if msg, _ := ed.StatusMessage(); !strings.Contains(msg, "bad key z") {
		t.Errorf("status = %q", msg)
	}
}

func TestLoadFileAndCallFunction(t *testing.T) {
	h, _ := newTestHost(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "kilo.lua")
	bad := filepath.Join(dir, "bad.lua")
	_ = os.WriteFile(good, []byte(`function greet() status("hello") end`), 0o644)
	_ = os.WriteFile(bad, []byte(`this is not lua`), 0o644)

	if err := h.LoadFile(good); err != nil {
		t.Fatalf("LoadFile(good) error = %v", err)
	}
	if err := h.CallFunction("greet"); err != nil {
		t.Errorf("CallFunction(greet) error = %v", err)
	}
	if msg, _ := h.ed.StatusMessage(); msg != "hello" {
		t.Errorf("status = %q", msg)
	}

	var serr *ScriptError
	if err := h.LoadFile(bad); !errors.As(err, &serr) || serr.Op != "load" {
		t.Errorf("LoadFile(bad) error = %v", err)
	}
	if err := h.CallFunction("nope"); !errors.Is(err, ErrFunctionNotFound) {
		t.Errorf("CallFunction(nope) error = %v", err)
	}
}
