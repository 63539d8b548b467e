package hangul

import "fmt"

type Role int

const (
	RoleNone Role = iota
	RoleLeading
	RoleVowel
	RoleTrailing
	// RoleAuto is a consonant whose lead or trail position is decided by the
	// composer state, as on two-set keyboards.
	RoleAuto
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleLeading:
		return "leading"
	case RoleVowel:
		return "vowel"
	case RoleTrailing:
		return "trailing"
	case RoleAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// JamoRole is the classification of one keystroke. The zero value is the
// "not part of composition" role.
type JamoRole struct {
	Kind Role
	Jamo rune
}

func None() JamoRole { return JamoRole{} }

func Leading(ch rune) JamoRole { return JamoRole{Kind: RoleLeading, Jamo: ch} }

func Vowel(ch rune) JamoRole { return JamoRole{Kind: RoleVowel, Jamo: ch} }

func Trailing(ch rune) JamoRole { return JamoRole{Kind: RoleTrailing, Jamo: ch} }

func Auto(ch rune) JamoRole { return JamoRole{Kind: RoleAuto, Jamo: ch} }

// Valid reports whether the jamo can play the role. Invalid roles are treated
// as RoleNone by the composer.
func (r JamoRole) Valid() bool {
	switch r.Kind {
	case RoleNone:
		return true
	case RoleLeading:
		return IsLead(r.Jamo)
	case RoleVowel:
		return IsVowel(r.Jamo)
	case RoleTrailing:
		return IsTrail(r.Jamo)
	case RoleAuto:
		return IsConsonant(r.Jamo)
	default:
		return false
	}
}

func (r JamoRole) String() string {
	if r.Kind == RoleNone {
		return "none"
	}
	return fmt.Sprintf("%s(%c)", r.Kind, r.Jamo)
}

// RoleFor infers the role of a jamo that was configured without one.
func RoleFor(ch rune) JamoRole {
	switch {
	case IsVowel(ch):
		return Vowel(ch)
	case IsConsonant(ch):
		return Auto(ch)
	default:
		return None()
	}
}
