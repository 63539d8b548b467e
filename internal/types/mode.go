package types

import (
	"fmt"
	"strings"
)

type InputMode int

const (
	ModeHangul InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeHangul:
		return "hangul"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// Toggled returns the other mode.
func (m InputMode) Toggled() InputMode {
	if m == ModeHangul {
		return ModeLatin
	}
	return ModeHangul
}

func ParseMode(value string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hangul", "korean", "ko":
		return ModeHangul, nil
	case "latin", "english", "en":
		return ModeLatin, nil
	default:
		return ModeHangul, fmt.Errorf("invalid input mode '%s'", value)
	}
}
