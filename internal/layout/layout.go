package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
)

// LayoutEntry binds the two shift levels of one key. A RoleNone shifted entry
// falls back to the normal one.
type LayoutEntry struct {
	Normal  hangul.JamoRole
	Shifted hangul.JamoRole
}

type Layout struct {
	name      string
	mapping   map[key.Code]LayoutEntry
	compounds *hangul.Compounds
	// libhangulID is the libhangul keyboard with the same key map; empty for
	// layouts libhangul does not know.
	libhangulID string
}

func NewLayout(name string, compounds *hangul.Compounds) *Layout {
	if compounds == nil {
		compounds = &hangul.Compounds{}
	}
	return &Layout{name: name, mapping: make(map[key.Code]LayoutEntry), compounds: compounds}
}

func (l *Layout) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// LibhangulID returns the libhangul keyboard identifier of a built-in layout.
// Clones and custom layouts have none.
func (l *Layout) LibhangulID() (string, bool) {
	if l == nil || l.libhangulID == "" {
		return "", false
	}
	return l.libhangulID, true
}

// Compounds returns the merge tables of the layout; nil layouts merge nothing.
func (l *Layout) Compounds() *hangul.Compounds {
	if l == nil {
		return nil
	}
	return l.compounds
}

func (l *Layout) Translate(code key.Code, shift bool) hangul.JamoRole {
	if l == nil {
		return hangul.None()
	}
	entry, ok := l.mapping[code]
	if !ok {
		return hangul.None()
	}
	if shift && entry.Shifted.Kind != hangul.RoleNone {
		return entry.Shifted
	}
	return entry.Normal
}

// Classify maps a keystroke to its jamo role. Keys held with Control, Alt or
// Super never compose.
func (l *Layout) Classify(k key.Key) hangul.JamoRole {
	if !k.Mods.Composing() {
		return hangul.None()
	}
	return l.Translate(k.Code, k.Shifted())
}

func (l *Layout) ApplyOverride(code key.Code, shift bool, role hangul.JamoRole) {
	if l == nil {
		return
	}
	l.libhangulID = ""
	entry := l.mapping[code]
	if shift {
		entry.Shifted = role
	} else {
		entry.Normal = role
	}
	if entry == (LayoutEntry{}) {
		delete(l.mapping, code)
		return
	}
	l.mapping[code] = entry
}

func (l *Layout) Clone(name string) *Layout {
	out := NewLayout(name, l.Compounds().Clone())
	if l == nil {
		return out
	}
	for code, entry := range l.mapping {
		out.mapping[code] = entry
	}
	return out
}

// Binding is one bound key as listed by Bindings.
type Binding struct {
	Key  key.Key
	Role hangul.JamoRole
}

// Bindings lists every bound key level ordered by key code, normal level first.
func (l *Layout) Bindings() []Binding {
	if l == nil {
		return nil
	}
	codes := make([]key.Code, 0, len(l.mapping))
	for code := range l.mapping {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	out := make([]Binding, 0, len(codes)*2)
	for _, code := range codes {
		entry := l.mapping[code]
		if entry.Normal.Kind != hangul.RoleNone {
			out = append(out, Binding{Key: key.New(code, 0), Role: entry.Normal})
		}
		if entry.Shifted.Kind != hangul.RoleNone {
			out = append(out, Binding{Key: key.New(code, key.Shift), Role: entry.Shifted})
		}
	}
	return out
}

func addEntry(mapping map[key.Code]LayoutEntry, code key.Code, normal, shifted hangul.JamoRole) {
	mapping[code] = LayoutEntry{Normal: normal, Shifted: shifted}
}

func auto(ch rune) hangul.JamoRole { return hangul.RoleFor(ch) }

func buildDubeolsik() *Layout {
	layout := NewLayout(Dubeolsik, hangul.TwoSetCompounds())
	layout.libhangulID = Dubeolsik
	mapping := layout.mapping
	none := hangul.None()
	addEntry(mapping, key.Q, auto('ㅂ'), auto('ㅃ'))
	addEntry(mapping, key.W, auto('ㅈ'), auto('ㅉ'))
	addEntry(mapping, key.E, auto('ㄷ'), auto('ㄸ'))
	addEntry(mapping, key.R, auto('ㄱ'), auto('ㄲ'))
	addEntry(mapping, key.T, auto('ㅅ'), auto('ㅆ'))
	addEntry(mapping, key.Y, auto('ㅛ'), none)
	addEntry(mapping, key.U, auto('ㅕ'), none)
	addEntry(mapping, key.I, auto('ㅑ'), none)
	addEntry(mapping, key.O, auto('ㅐ'), auto('ㅒ'))
	addEntry(mapping, key.P, auto('ㅔ'), auto('ㅖ'))
	addEntry(mapping, key.A, auto('ㅁ'), none)
	addEntry(mapping, key.S, auto('ㄴ'), none)
	addEntry(mapping, key.D, auto('ㅇ'), none)
	addEntry(mapping, key.F, auto('ㄹ'), none)
	addEntry(mapping, key.G, auto('ㅎ'), none)
	addEntry(mapping, key.H, auto('ㅗ'), none)
	addEntry(mapping, key.J, auto('ㅓ'), none)
	addEntry(mapping, key.K, auto('ㅏ'), none)
	addEntry(mapping, key.L, auto('ㅣ'), none)
	addEntry(mapping, key.Z, auto('ㅋ'), none)
	addEntry(mapping, key.X, auto('ㅌ'), none)
	addEntry(mapping, key.C, auto('ㅊ'), none)
	addEntry(mapping, key.V, auto('ㅍ'), none)
	addEntry(mapping, key.B, auto('ㅠ'), none)
	addEntry(mapping, key.N, auto('ㅜ'), none)
	addEntry(mapping, key.M, auto('ㅡ'), none)
	return layout
}

// buildSebeolsik390 is the Sebeolsik 390 keyboard: initials on the right
// hand, finals on the left hand and the number row, vowels in between.
func buildSebeolsik390() *Layout {
	layout := NewLayout(Sebeolsik390, hangul.ThreeSetCompounds())
	layout.libhangulID = Sebeolsik390
	mapping := layout.mapping
	lead := hangul.Leading
	trail := hangul.Trailing
	vowel := hangul.Vowel
	none := hangul.None()

	addEntry(mapping, key.Num1, trail('ㅎ'), trail('ㅈ'))
	addEntry(mapping, key.Num2, trail('ㅆ'), none)
	addEntry(mapping, key.Num3, trail('ㅂ'), none)
	addEntry(mapping, key.Num4, vowel('ㅛ'), none)
	addEntry(mapping, key.Num5, vowel('ㅠ'), none)
	addEntry(mapping, key.Num6, vowel('ㅑ'), none)
	addEntry(mapping, key.Num7, vowel('ㅖ'), none)
	addEntry(mapping, key.Num8, vowel('ㅢ'), none)
	addEntry(mapping, key.Num9, vowel('ㅜ'), none)
	addEntry(mapping, key.Num0, lead('ㅋ'), none)

	addEntry(mapping, key.Q, trail('ㅅ'), trail('ㅍ'))
	addEntry(mapping, key.W, trail('ㄹ'), trail('ㅌ'))
	addEntry(mapping, key.E, vowel('ㅕ'), trail('ㄵ'))
	addEntry(mapping, key.R, vowel('ㅐ'), vowel('ㅒ'))
	addEntry(mapping, key.T, vowel('ㅓ'), none)
	addEntry(mapping, key.Y, lead('ㄹ'), none)
	addEntry(mapping, key.U, lead('ㄷ'), none)
	addEntry(mapping, key.I, lead('ㅁ'), none)
	addEntry(mapping, key.O, lead('ㅊ'), none)
	addEntry(mapping, key.P, lead('ㅍ'), none)

	addEntry(mapping, key.A, trail('ㅇ'), trail('ㄷ'))
	addEntry(mapping, key.S, trail('ㄴ'), trail('ㄶ'))
	addEntry(mapping, key.D, vowel('ㅣ'), trail('ㄺ'))
	addEntry(mapping, key.F, vowel('ㅏ'), trail('ㄲ'))
	addEntry(mapping, key.G, vowel('ㅡ'), none)
	addEntry(mapping, key.H, lead('ㄴ'), none)
	addEntry(mapping, key.J, lead('ㅇ'), none)
	addEntry(mapping, key.K, lead('ㄱ'), none)
	addEntry(mapping, key.L, lead('ㅈ'), none)
	addEntry(mapping, key.Semicolon, lead('ㅂ'), none)
	addEntry(mapping, key.Apostrophe, lead('ㅌ'), none)

	addEntry(mapping, key.Z, trail('ㅁ'), trail('ㅊ'))
	addEntry(mapping, key.X, trail('ㄱ'), trail('ㅄ'))
	addEntry(mapping, key.C, vowel('ㅔ'), trail('ㅋ'))
	addEntry(mapping, key.V, vowel('ㅗ'), trail('ㄳ'))
	addEntry(mapping, key.B, vowel('ㅜ'), none)
	addEntry(mapping, key.N, lead('ㅅ'), none)
	addEntry(mapping, key.M, lead('ㅎ'), none)
	addEntry(mapping, key.Slash, vowel('ㅗ'), none)
	return layout
}

const (
	Dubeolsik    = "2"
	Sebeolsik390 = "39"
)

var builtins = map[string]func() *Layout{
	Dubeolsik:    buildDubeolsik,
	Sebeolsik390: buildSebeolsik390,
}

var aliases = map[string]string{
	"":              Dubeolsik,
	"2":             Dubeolsik,
	"2set":          Dubeolsik,
	"two-set":       Dubeolsik,
	"dubeolsik":     Dubeolsik,
	"39":            Sebeolsik390,
	"3-390":         Sebeolsik390,
	"sebeolsik":     Sebeolsik390,
	"sebeolsik-390": Sebeolsik390,
}

// Resolve maps a layout name or alias to its canonical identifier.
func Resolve(name string) (string, bool) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

func AvailableLayouts() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Load(name string) (*Layout, error) {
	id, ok := Resolve(name)
	if !ok {
		return nil, fmt.Errorf("unknown layout: %s", name)
	}
	return builtins[id](), nil
}
