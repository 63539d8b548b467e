package hangul

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

// conjoining maps compatibility jamo to the conjoining jamo that NFC composes.
func conjoining(lead, vowel, trail rune) string {
	out := []rune{0x1100 + rune(choseongIndex[lead]), 0x1161 + rune(jungseongIndex[vowel])}
	if trail != 0 {
		out = append(out, 0x11A7+rune(jongseongIndex[trail]))
	}
	return string(out)
}

func TestComposeMatchesNFC(t *testing.T) {
	for _, lead := range choList {
		for _, vowel := range jungList {
			for _, trail := range jongList {
				syllable, ok := Compose(lead, vowel, trail)
				if !ok {
					t.Fatalf("expected %c%c%c to compose", lead, vowel, trail)
				}
				want := norm.NFC.String(conjoining(lead, vowel, trail))
				if string(syllable) != want {
					t.Fatalf("expected %q for %c%c%c, got %q", want, lead, vowel, trail, string(syllable))
				}
			}
		}
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	for ch := rune(syllableBase); ch <= syllableLast; ch++ {
		lead, vowel, trail, ok := Decompose(ch)
		if !ok {
			t.Fatalf("expected %q to decompose", ch)
		}
		back, ok := Compose(lead, vowel, trail)
		if !ok || back != ch {
			t.Fatalf("expected %q to recompose, got %q", ch, back)
		}
	}
	if _, _, _, ok := Decompose('a'); ok {
		t.Fatalf("expected non-syllable to be rejected")
	}
}

func TestComposeRejectsMisplacedJamo(t *testing.T) {
	if _, ok := Compose('ㅏ', 'ㅏ', 0); ok {
		t.Fatalf("expected vowel lead to be rejected")
	}
	if _, ok := Compose('ㄱ', 'ㄱ', 0); ok {
		t.Fatalf("expected consonant vowel to be rejected")
	}
	if _, ok := Compose('ㄱ', 'ㅏ', 'ㄸ'); ok {
		t.Fatalf("expected 'ㄸ' to be rejected as a trail")
	}
}

func TestJamoClasses(t *testing.T) {
	if !IsLead('ㄸ') || IsTrail('ㄸ') {
		t.Fatalf("expected 'ㄸ' to be lead only")
	}
	if IsLead('ㄳ') || !IsTrail('ㄳ') {
		t.Fatalf("expected 'ㄳ' to be trail only")
	}
	if !IsConsonant('ㄱ') || IsVowel('ㄱ') {
		t.Fatalf("expected 'ㄱ' to be a consonant")
	}
	if !IsJamo('ㅢ') || IsJamo('a') || IsTrail(0) {
		t.Fatalf("unexpected jamo classification")
	}
}

func TestRoleValidity(t *testing.T) {
	cases := []struct {
		role JamoRole
		want bool
	}{
		{None(), true},
		{Leading('ㄱ'), true},
		{Leading('ㄳ'), false},
		{Vowel('ㅘ'), true},
		{Vowel('ㄱ'), false},
		{Trailing('ㄳ'), true},
		{Trailing('ㅃ'), false},
		{Auto('ㅃ'), true},
		{Auto('a'), false},
	}
	for _, tc := range cases {
		if got := tc.role.Valid(); got != tc.want {
			t.Fatalf("expected %s valid=%v, got %v", tc.role, tc.want, got)
		}
	}
	if RoleFor('ㅏ') != Vowel('ㅏ') || RoleFor('ㄱ') != Auto('ㄱ') || RoleFor('x') != None() {
		t.Fatalf("unexpected inferred roles")
	}
}
