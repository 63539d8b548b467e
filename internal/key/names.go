package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var qwerty = map[Code][2]rune{
	Grave: {'`', '~'}, Num1: {'1', '!'}, Num2: {'2', '@'}, Num3: {'3', '#'},
	Num4: {'4', '$'}, Num5: {'5', '%'}, Num6: {'6', '^'}, Num7: {'7', '&'},
	Num8: {'8', '*'}, Num9: {'9', '('}, Num0: {'0', ')'}, Minus: {'-', '_'},
	Equal: {'=', '+'},
	Q: {'q', 'Q'}, W: {'w', 'W'}, E: {'e', 'E'}, R: {'r', 'R'}, T: {'t', 'T'},
	Y: {'y', 'Y'}, U: {'u', 'U'}, I: {'i', 'I'}, O: {'o', 'O'}, P: {'p', 'P'},
	LeftBrace: {'[', '{'}, RightBrace: {']', '}'}, Backslash: {'\\', '|'},
	A: {'a', 'A'}, S: {'s', 'S'}, D: {'d', 'D'}, F: {'f', 'F'}, G: {'g', 'G'},
	H: {'h', 'H'}, J: {'j', 'J'}, K: {'k', 'K'}, L: {'l', 'L'},
	Semicolon: {';', ':'}, Apostrophe: {'\'', '"'},
	Z: {'z', 'Z'}, X: {'x', 'X'}, C: {'c', 'C'}, V: {'v', 'V'}, B: {'b', 'B'},
	N: {'n', 'N'}, M: {'m', 'M'}, Comma: {',', '<'}, Dot: {'.', '>'},
	Slash: {'/', '?'},
	Space: {' ', ' '}, Tab: {'\t', '\t'}, Enter: {'\n', '\n'},
	Backspace: {'\b', '\b'}, Esc: {0x1b, 0x1b},
}

var charKeys = buildCharKeys()

func buildCharKeys() map[rune]Key {
	out := make(map[rune]Key, len(qwerty)*2)
	for code, pair := range qwerty {
		if _, ok := out[pair[1]]; !ok && pair[1] != pair[0] {
			out[pair[1]] = Key{Code: code, Mods: Shift}
		}
		out[pair[0]] = Key{Code: code}
	}
	out['\r'] = Key{Code: Enter}
	out[0x7f] = Key{Code: Backspace}
	return out
}

// FromChar maps a character typed on a US-QWERTY keyboard back to the key
// that produces it.
func FromChar(r rune) (Key, bool) {
	k, ok := charKeys[r]
	return k, ok
}

var codeNames = map[Code]string{}

var nameTable = buildNameTable()

func buildNameTable() map[string]Code {
	table := map[string]Code{}
	letters := []Code{A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z}
	for i, code := range letters {
		table[fmt.Sprintf("KEY_%c", 'A'+i)] = code
	}
	digits := []Code{Num0, Num1, Num2, Num3, Num4, Num5, Num6, Num7, Num8, Num9}
	for i, code := range digits {
		table[fmt.Sprintf("KEY_%c", '0'+i)] = code
	}

	additional := map[string]Code{
		"KEY_MINUS":      Minus,
		"KEY_EQUAL":      Equal,
		"KEY_LEFTBRACE":  LeftBrace,
		"KEY_RIGHTBRACE": RightBrace,
		"KEY_BACKSLASH":  Backslash,
		"KEY_SEMICOLON":  Semicolon,
		"KEY_APOSTROPHE": Apostrophe,
		"KEY_GRAVE":      Grave,
		"KEY_COMMA":      Comma,
		"KEY_DOT":        Dot,
		"KEY_SLASH":      Slash,
		"KEY_SPACE":      Space,
		"KEY_TAB":        Tab,
		"KEY_ENTER":      Enter,
		"KEY_ESC":        Esc,
		"KEY_BACKSPACE":  Backspace,
		"KEY_LEFTSHIFT":  LeftShift,
		"KEY_RIGHTSHIFT": RightShift,
		"KEY_LEFTCTRL":   LeftCtrl,
		"KEY_RIGHTCTRL":  RightCtrl,
		"KEY_LEFTALT":    LeftAlt,
		"KEY_RIGHTALT":   RightAlt,
		"KEY_LEFTMETA":   LeftMeta,
		"KEY_RIGHTMETA":  RightMeta,
		"KEY_CAPSLOCK":   Caps,
		"KEY_HANGEUL":    Hangul,
		"KEY_HANJA":      Hanja,
	}
	for name, code := range additional {
		table[name] = code
	}
	for name, code := range table {
		codeNames[code] = name
	}
	table["KEY_HANGUL"] = Hangul
	return table
}

var aliases = map[string]string{
	"ALT_R":     "KEY_RIGHTALT",
	"ALT_L":     "KEY_LEFTALT",
	"CTRL_L":    "KEY_LEFTCTRL",
	"CTRL_R":    "KEY_RIGHTCTRL",
	"SHIFT_L":   "KEY_LEFTSHIFT",
	"SHIFT_R":   "KEY_RIGHTSHIFT",
	"HANGUL":    "KEY_HANGUL",
	"HANGEUL":   "KEY_HANGEUL",
	"RETURN":    "KEY_ENTER",
	"ESCAPE":    "KEY_ESC",
	"BACKSPACE": "KEY_BACKSPACE",
}

var modifierNames = map[string]Modifiers{
	"SHIFT":   Shift,
	"CTRL":    Control,
	"CONTROL": Control,
	"ALT":     Alt,
	"SUPER":   Super,
	"META":    Super,
	"WIN":     Super,
}

// Parse reads a key description such as "a", "Q", "shift+space", "KEY_A" or
// "alt_r". A single printable character is looked up on the QWERTY map, so
// "Q" yields shift+q.
func Parse(name string) (Key, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Key{}, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		if k, ok := FromChar(r); ok {
			return k, nil
		}
	}

	tokens := strings.Split(trimmed, "+")
	var mods Modifiers
	base := ""
	for i, token := range tokens {
		part := strings.TrimSpace(token)
		if part == "" {
			// "ctrl++" style: the key itself is '+'
			if i == len(tokens)-1 && base == "" {
				base = "+"
			}
			continue
		}
		if mod, ok := modifierNames[strings.ToUpper(part)]; ok && i < len(tokens)-1 {
			mods |= mod
			continue
		}
		if base != "" {
			return Key{}, fmt.Errorf("invalid key description '%s'", name)
		}
		base = part
	}
	if base == "" {
		return Key{}, fmt.Errorf("invalid key description '%s'", name)
	}

	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		if k, ok := FromChar(r); ok {
			k.Mods |= mods
			return k, nil
		}
	}

	code, err := parseCode(base)
	if err != nil {
		return Key{}, err
	}
	return Key{Code: code, Mods: mods}, nil
}

func parseCode(name string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if alias, ok := aliases[normalized]; ok {
		normalized = alias
	}
	if !strings.HasPrefix(normalized, "KEY_") {
		normalized = "KEY_" + normalized
	}
	code, ok := nameTable[normalized]
	if !ok {
		return 0, fmt.Errorf("unknown key code '%s'", name)
	}
	return code, nil
}

// ParseList splits a comma separated list of key descriptions.
func ParseList(value string) ([]Key, error) {
	parts := strings.Split(value, ",")
	out := make([]Key, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		k, err := Parse(trimmed)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Sequence converts typed text into the keys that produce it.
func Sequence(text string) ([]Key, error) {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		k, ok := FromChar(r)
		if !ok {
			return nil, fmt.Errorf("no key produces %q", r)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
