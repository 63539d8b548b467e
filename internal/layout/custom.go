package layout

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
)

// CustomLayout is the TOML description of a user layout:
//
//	name = "my-2"
//	base = "2"
//
//	[[key]]
//	key = "q"
//	normal = "ㅂ"
//	shifted = "ㅃ"
//
//	[compounds]
//	vowel = ["ㅗㅏ=ㅘ"]
type CustomLayout struct {
	Name      string         `toml:"name"`
	Base      string         `toml:"base"`
	Keys      []CustomPair   `toml:"key"`
	Compounds CustomCompound `toml:"compounds"`
}

type CustomPair struct {
	Key     string `toml:"key"`
	Normal  string `toml:"normal"`
	Shifted string `toml:"shifted"`
	Role    string `toml:"role"`
}

// CustomCompound entries read "ab=c". When a table is present it replaces the
// base layout's table for that position.
type CustomCompound struct {
	Lead  []string `toml:"lead"`
	Vowel []string `toml:"vowel"`
	Trail []string `toml:"trail"`
}

func LoadCustomFile(path string) (*Layout, error) {
	var custom CustomLayout
	meta, err := toml.DecodeFile(path, &custom)
	if err != nil {
		return nil, fmt.Errorf("parse custom layout %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("custom layout %s: unknown field '%s'", path, undecoded[0])
	}
	return custom.Build()
}

func ParseCustom(data string) (*Layout, error) {
	var custom CustomLayout
	meta, err := toml.Decode(data, &custom)
	if err != nil {
		return nil, fmt.Errorf("parse custom layout: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("custom layout: unknown field '%s'", undecoded[0])
	}
	return custom.Build()
}

// Build applies the description on top of its base layout, or on an empty
// layout when no base is named.
func (c CustomLayout) Build() (*Layout, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = "custom"
	}

	var l *Layout
	if strings.TrimSpace(c.Base) != "" {
		base, err := Load(c.Base)
		if err != nil {
			return nil, err
		}
		l = base.Clone(name)
	} else {
		l = NewLayout(name, nil)
	}

	if err := ApplyCustomPairs(l, c.Keys); err != nil {
		return nil, err
	}
	if err := applyCompounds(l.compounds, c.Compounds); err != nil {
		return nil, err
	}
	return l, nil
}

func ApplyCustomPairs(l *Layout, pairs []CustomPair) error {
	for _, pair := range pairs {
		k, err := key.Parse(pair.Key)
		if err != nil {
			return fmt.Errorf("custom key '%s': %w", pair.Key, err)
		}
		normal, err := makeRole(pair.Normal, pair.Role)
		if err != nil {
			return fmt.Errorf("custom key '%s': %w", pair.Key, err)
		}
		shifted, err := makeRole(pair.Shifted, pair.Role)
		if err != nil {
			return fmt.Errorf("custom key '%s': %w", pair.Key, err)
		}
		// a single character such as "Q" already names the shifted level
		shift := k.Shifted()
		l.ApplyOverride(k.Code, shift, normal)
		if !shift {
			l.ApplyOverride(k.Code, true, shifted)
		}
	}
	return nil
}

func makeRole(value, role string) (hangul.JamoRole, error) {
	if value == "" {
		return hangul.None(), nil
	}
	r := []rune(value)
	if len(r) != 1 {
		return hangul.None(), fmt.Errorf("jamo value must be a single rune, got %q", value)
	}
	out, err := parseRole(r[0], role)
	if err != nil {
		return hangul.None(), err
	}
	if !out.Valid() {
		return hangul.None(), fmt.Errorf("'%c' cannot be used as %s", r[0], out.Kind)
	}
	return out, nil
}

func parseRole(ch rune, role string) (hangul.JamoRole, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "":
		inferred := hangul.RoleFor(ch)
		if inferred.Kind == hangul.RoleNone {
			return inferred, fmt.Errorf("'%c' is not a jamo", ch)
		}
		return inferred, nil
	case "auto":
		return hangul.Auto(ch), nil
	case "leading", "lead":
		return hangul.Leading(ch), nil
	case "vowel":
		return hangul.Vowel(ch), nil
	case "trailing", "trail":
		return hangul.Trailing(ch), nil
	default:
		return hangul.None(), fmt.Errorf("unknown role '%s'", role)
	}
}

func applyCompounds(dst *hangul.Compounds, src CustomCompound) error {
	tables := []struct {
		entries []string
		table   *map[[2]rune]rune
		valid   func(rune) bool
		what    string
	}{
		{src.Lead, &dst.Lead, hangul.IsLead, "lead"},
		{src.Vowel, &dst.Vowel, hangul.IsVowel, "vowel"},
		{src.Trail, &dst.Trail, hangul.IsTrail, "trail"},
	}
	for _, t := range tables {
		if t.entries == nil {
			continue
		}
		table := make(map[[2]rune]rune, len(t.entries))
		for _, entry := range t.entries {
			pair, merged, err := parseCompound(entry)
			if err != nil {
				return err
			}
			if !t.valid(pair[0]) || !t.valid(pair[1]) || !t.valid(merged) {
				return fmt.Errorf("compound '%s' is not a valid %s combination", entry, t.what)
			}
			table[pair] = merged
		}
		*t.table = table
	}
	return nil
}

func parseCompound(entry string) ([2]rune, rune, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(entry), "=")
	parts := []rune(strings.TrimSpace(left))
	merged := []rune(strings.TrimSpace(right))
	if !ok || len(parts) != 2 || len(merged) != 1 {
		return [2]rune{}, 0, fmt.Errorf("invalid compound '%s', expected form 'ab=c'", entry)
	}
	return [2]rune{parts[0], parts[1]}, merged[0], nil
}
