package syntax

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRegistryDetect(t *testing.T) {
	r := DefaultRegistry()
	if r.Len() == 0 {
		t.Fatal("default registry is empty")
	}

	tests := []struct {
		file string
		want string
		ok   bool
	}{
		{"main.c", "C", true},
		{"/tmp/src/kilo.h", "C", true},
		{"editor.go", "Go", true},
		{"init.lua", "Lua", true},
		{"script.py", "Python", true},
		{"notes.unknownext", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			def, ok := r.Detect(tt.file)
			if ok != tt.ok {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.file, ok, tt.ok)
			}
			if ok && def.Name != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.file, def.Name, tt.want)
			}
		})
	}
}

func TestDefaultDefinitionsValid(t *testing.T) {
	r := NewRegistry()
	if err := r.Load(strings.NewReader(string(defaultDefinitions))); err != nil {
		t.Fatalf("embedded definitions: %v", err)
	}
}

func TestDetectFallsBackToLanguageName(t *testing.T) {
	r := NewRegistry()
	def := NewDefinition("Python")
	r.Register(def)

	got, ok := r.Detect("tool.py")
	if !ok {
		t.Fatal("expected a match through the lexer registry")
	}
	if got != def {
		t.Errorf("Detect returned %q", got.Name)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	if _, ok := r.Lookup("golang"); !ok {
		t.Error("alias golang should resolve")
	}
	if _, ok := r.Lookup("GO"); !ok {
		t.Error("lookup should ignore case")
	}
	if _, ok := r.Lookup("cobol"); ok {
		t.Error("cobol should not resolve")
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(NewDefinition("x"))
	r.Register(NewDefinition("X"))
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryLoad(t *testing.T) {
	src := `
- name: good
  files: ["*.good"]
  keywords: [alpha, "beta|"]
  comments:
    line: "#"
  highlight_numbers: false
- name: bad
  comments:
    block_open: "{-"
- keywords: [x]
`
	r := NewRegistry()
	err := r.Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for the invalid entries")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}

	def, ok := r.Lookup("good")
	if !ok {
		t.Fatal("valid definition should be registered")
	}
	if def.Flags.Has(HighlightNumbers) {
		t.Error("highlight_numbers: false was ignored")
	}
	if !def.Flags.Has(HighlightStrings) {
		t.Error("strings should default to on")
	}
	if _, ok := r.Lookup("bad"); ok {
		t.Error("invalid definition should not be registered")
	}
}

func TestRegistryLoadInvalidYAML(t *testing.T) {
	r := NewRegistry()
	err := r.Load(strings.NewReader("- name: [unterminated"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestRegistryLoadFile(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "syntax.yaml")
	if err := os.WriteFile(path, []byte("- name: mine\n  files: [\"*.mine\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := r.Detect("a.mine"); !ok {
		t.Error("loaded definition not detected")
	}
}

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     *Definition
		wantErr bool
	}{
		{"empty", NewDefinition("e"), false},
		{"full", cDefinition(), false},
		{"open only", NewDefinition("x").WithComments("", "/*", ""), true},
		{"close only", NewDefinition("x").WithComments("", "", "*/"), true},
		{"spaced token", NewDefinition("x").WithComments("/ /", "", ""), true},
		{"empty keyword", NewDefinition("x").WithKeywords([]string{"|"}), true},
		{"spaced keyword", NewDefinition("x").WithKeywords([]string{"a b"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefinitionWithIsCopy(t *testing.T) {
	orig := cDefinition()
	mod := orig.WithKeywords([]string{"x"})
	if len(orig.Keywords) != 3 {
		t.Error("WithKeywords modified the original")
	}
	if len(mod.Keywords) != 1 {
		t.Error("WithKeywords did not apply")
	}
	off := orig.WithFlag(HighlightStrings, false)
	if !orig.Flags.Has(HighlightStrings) || off.Flags.Has(HighlightStrings) {
		t.Error("WithFlag should only change the copy")
	}
}
