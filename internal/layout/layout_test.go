package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
)

func TestAvailableLayouts(t *testing.T) {
	names := AvailableLayouts()

	expected := []string{"2", "39"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d layouts, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected layout %d to be %q, got %q", i, name, names[i])
		}
	}
}

func TestResolveAliases(t *testing.T) {
	cases := map[string]string{
		"":              "2",
		"dubeolsik":     "2",
		" Dubeolsik ":   "2",
		"sebeolsik-390": "39",
		"39":            "39",
	}
	for name, want := range cases {
		got, ok := Resolve(name)
		if !ok || got != want {
			t.Fatalf("expected %q to resolve to %q, got %q", name, want, got)
		}
	}
	if _, ok := Resolve("kana-86"); ok {
		t.Fatalf("expected kana-86 to be unknown")
	}
}

func TestLoadDubeolsik(t *testing.T) {
	layout, err := Load("dubeolsik")
	if err != nil {
		t.Fatalf("unexpected error loading dubeolsik: %v", err)
	}
	if layout.Name() != "2" {
		t.Fatalf("expected canonical name '2', got %q", layout.Name())
	}

	role := layout.Translate(key.Q, false)
	if role != hangul.Auto('ㅂ') {
		t.Fatalf("unexpected role for Q: %s", role)
	}
	if shifted := layout.Translate(key.Q, true); shifted != hangul.Auto('ㅃ') {
		t.Fatalf("expected shifted 'ㅃ', got %s", shifted)
	}
	if shifted := layout.Translate(key.A, true); shifted != hangul.Auto('ㅁ') {
		t.Fatalf("expected shifted A to fall back to 'ㅁ', got %s", shifted)
	}
	if vowel := layout.Translate(key.K, false); vowel != hangul.Vowel('ㅏ') {
		t.Fatalf("expected vowel 'ㅏ' on K, got %s", vowel)
	}
	if missing := layout.Translate(key.Code(0xffff), false); missing != hangul.None() {
		t.Fatalf("expected no mapping for unknown key")
	}
}

func TestClassify(t *testing.T) {
	layout, err := Load("2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if role := layout.Classify(key.New(key.A, 0)); role != hangul.Auto('ㅁ') {
		t.Fatalf("expected 'ㅁ' for A, got %s", role)
	}
	if role := layout.Classify(key.New(key.A, key.CapsLock)); role != hangul.Auto('ㅁ') {
		t.Fatalf("expected CapsLock not to change classification, got %s", role)
	}
	if role := layout.Classify(key.New(key.A, key.Control)); role != hangul.None() {
		t.Fatalf("expected ctrl+A to be None, got %s", role)
	}
	if role := layout.Classify(key.New(key.Num1, 0)); role != hangul.None() {
		t.Fatalf("expected digits to be None, got %s", role)
	}

	var nilLayout *Layout
	if role := nilLayout.Classify(key.New(key.A, 0)); role != hangul.None() {
		t.Fatalf("expected nil layout to classify None, got %s", role)
	}
	if nilLayout.Compounds() != nil {
		t.Fatalf("expected nil layout to have no compounds")
	}
}

func TestLoadSebeolsik390(t *testing.T) {
	layout, err := Load("sebeolsik-390")
	if err != nil {
		t.Fatalf("unexpected error loading sebeolsik-390: %v", err)
	}

	tests := []struct {
		code  key.Code
		shift bool
		want  hangul.JamoRole
	}{
		{key.K, false, hangul.Leading('ㄱ')},
		{key.H, false, hangul.Leading('ㄴ')},
		{key.M, false, hangul.Leading('ㅎ')},
		{key.Num0, false, hangul.Leading('ㅋ')},
		{key.Semicolon, false, hangul.Leading('ㅂ')},
		{key.F, false, hangul.Vowel('ㅏ')},
		{key.D, false, hangul.Vowel('ㅣ')},
		{key.Num8, false, hangul.Vowel('ㅢ')},
		{key.R, true, hangul.Vowel('ㅒ')},
		{key.S, false, hangul.Trailing('ㄴ')},
		{key.X, false, hangul.Trailing('ㄱ')},
		{key.Num1, false, hangul.Trailing('ㅎ')},
		{key.Num1, true, hangul.Trailing('ㅈ')},
		{key.F, true, hangul.Trailing('ㄲ')},
		{key.S, true, hangul.Trailing('ㄶ')},
		{key.Comma, false, hangul.None()},
	}
	for _, tt := range tests {
		if role := layout.Translate(tt.code, tt.shift); role != tt.want {
			t.Fatalf("key %d shift=%v: expected %s, got %s", tt.code, tt.shift, tt.want, role)
		}
	}
	if _, ok := layout.Compounds().CombineLead('ㄱ', 'ㄱ'); !ok {
		t.Fatalf("expected sebeolsik to double leads")
	}
}

func TestLibhangulID(t *testing.T) {
	for _, name := range AvailableLayouts() {
		layout, err := Load(name)
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", name, err)
		}
		if id, ok := layout.LibhangulID(); !ok || id != name {
			t.Fatalf("expected layout %s to map to libhangul keyboard %s, got %q", name, name, id)
		}
	}

	layout, _ := Load("2")
	if _, ok := layout.Clone("copy").LibhangulID(); ok {
		t.Fatalf("expected clone to have no libhangul keyboard")
	}
	layout.ApplyOverride(key.Q, false, hangul.Vowel('ㅏ'))
	if _, ok := layout.LibhangulID(); ok {
		t.Fatalf("expected overridden layout to have no libhangul keyboard")
	}

	custom, err := ParseCustom("name = \"mine\"\n")
	if err != nil {
		t.Fatalf("unexpected error parsing custom layout: %v", err)
	}
	if _, ok := custom.LibhangulID(); ok {
		t.Fatalf("expected custom layout to have no libhangul keyboard")
	}
}

func TestLoadUnknownLayout(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}

func TestApplyOverride(t *testing.T) {
	lay, err := Load("2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	lay.ApplyOverride(key.A, false, hangul.Auto('ㅋ'))
	if role := lay.Translate(key.A, false); role != hangul.Auto('ㅋ') {
		t.Fatalf("expected override 'ㅋ', got %s", role)
	}

	lay.ApplyOverride(key.A, false, hangul.None())
	if role := lay.Translate(key.A, false); role != hangul.None() {
		t.Fatalf("expected cleared binding, got %s", role)
	}

	fresh, _ := Load("2")
	if role := fresh.Translate(key.A, false); role != hangul.Auto('ㅁ') {
		t.Fatalf("expected builtins to be rebuilt per load, got %s", role)
	}
}

func TestBindingsOrdered(t *testing.T) {
	lay, _ := Load("2")
	bindings := lay.Bindings()
	if len(bindings) != 26+7 {
		t.Fatalf("expected 33 bindings, got %d", len(bindings))
	}
	for i := 1; i < len(bindings); i++ {
		if bindings[i].Key.Code < bindings[i-1].Key.Code {
			t.Fatalf("bindings not ordered at %d", i)
		}
	}
}

const customLayout = `
name = "test"
base = "2"

[[key]]
key = "a"
normal = "ㅋ"
shifted = "ㅌ"

[[key]]
key = "KEY_1"
normal = "ㄳ"
role = "trailing"

[compounds]
lead = ["ㄱㄱ=ㄲ"]
`

func TestParseCustom(t *testing.T) {
	lay, err := ParseCustom(customLayout)
	if err != nil {
		t.Fatalf("parse custom: %v", err)
	}
	if lay.Name() != "test" {
		t.Fatalf("expected name 'test', got %q", lay.Name())
	}
	if role := lay.Translate(key.A, false); role != hangul.Auto('ㅋ') {
		t.Fatalf("expected 'ㅋ' on A, got %s", role)
	}
	if role := lay.Translate(key.A, true); role != hangul.Auto('ㅌ') {
		t.Fatalf("expected 'ㅌ' on shift+A, got %s", role)
	}
	if role := lay.Translate(key.Num1, false); role != hangul.Trailing('ㄳ') {
		t.Fatalf("expected trailing 'ㄳ' on 1, got %s", role)
	}
	if role := lay.Translate(key.Q, false); role != hangul.Auto('ㅂ') {
		t.Fatalf("expected base binding to survive, got %s", role)
	}
	if _, ok := lay.Compounds().CombineLead('ㄱ', 'ㄱ'); !ok {
		t.Fatalf("expected custom lead compound")
	}
	if _, ok := lay.Compounds().CombineVowel('ㅗ', 'ㅏ'); !ok {
		t.Fatalf("expected base vowel compounds to survive")
	}
}

func TestParseCustomErrors(t *testing.T) {
	cases := map[string]string{
		"bad role":          "[[key]]\nkey = \"a\"\nnormal = \"ㅏ\"\nrole = \"trailing\"\n",
		"not jamo":          "[[key]]\nkey = \"a\"\nnormal = \"x\"\n",
		"unknown key":       "[[key]]\nkey = \"KEY_NOPE\"\nnormal = \"ㄱ\"\n",
		"bad compound":      "[compounds]\nvowel = [\"ㄱㄱ=ㄲ\"]\n",
		"compound form":     "[compounds]\ntrail = [\"ㄱ=ㄲ\"]\n",
		"unknown base":      "base = \"kana\"\n",
		"unknown field":     "nmae = \"typo\"\n",
		"unknown key field": "[[key]]\nkey = \"a\"\nnormal = \"ㅁ\"\nshift = \"ㅃ\"\n",
	}
	for name, data := range cases {
		if _, err := ParseCustom(data); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(customLayout), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lay, err := LoadCustomFile(path)
	if err != nil {
		t.Fatalf("load custom file: %v", err)
	}
	if lay.Name() != "test" {
		t.Fatalf("expected name 'test', got %q", lay.Name())
	}

	if err := os.WriteFile(path, []byte("nmae = \"typo\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadCustomFile(path); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}
