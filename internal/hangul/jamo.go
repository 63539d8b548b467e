package hangul

const (
	syllableBase  = 0xAC00
	syllableLast  = 0xD7A3
	vowelCount    = 21
	trailingCount = 28
)

var (
	choList  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungList = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongList = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	choseongIndex  = buildIndex(choList)
	jungseongIndex = buildIndex(jungList)
	jongseongIndex = buildIndex(filterZero(jongList), 1)
)

func buildIndex(list []rune, offset ...int) map[rune]int {
	base := 0
	if len(offset) > 0 {
		base = offset[0]
	}
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i + base
	}
	return idx
}

func filterZero(list []rune) []rune {
	out := make([]rune, 0, len(list))
	for _, ch := range list {
		if ch != 0 {
			out = append(out, ch)
		}
	}
	return out
}

func IsLead(ch rune) bool {
	_, ok := choseongIndex[ch]
	return ok
}

func IsVowel(ch rune) bool {
	_, ok := jungseongIndex[ch]
	return ok
}

func IsTrail(ch rune) bool {
	_, ok := jongseongIndex[ch]
	return ok
}

func IsConsonant(ch rune) bool {
	return IsLead(ch) || IsTrail(ch)
}

func IsJamo(ch rune) bool {
	return IsConsonant(ch) || IsVowel(ch)
}

func IsSyllable(ch rune) bool {
	return ch >= syllableBase && ch <= syllableLast
}

// Compose builds a precomposed syllable from compatibility jamo. trail may be
// zero.
func Compose(lead, vowel, trail rune) (rune, bool) {
	li, ok := choseongIndex[lead]
	if !ok {
		return 0, false
	}
	vi, ok := jungseongIndex[vowel]
	if !ok {
		return 0, false
	}
	ti := 0
	if trail != 0 {
		ti, ok = jongseongIndex[trail]
		if !ok {
			return 0, false
		}
	}
	return rune(syllableBase + (li*vowelCount+vi)*trailingCount + ti), true
}

// Decompose splits a precomposed syllable into compatibility jamo.
func Decompose(ch rune) (lead, vowel, trail rune, ok bool) {
	if !IsSyllable(ch) {
		return 0, 0, 0, false
	}
	code := int(ch - syllableBase)
	ti := code % trailingCount
	vi := (code / trailingCount) % vowelCount
	li := code / (trailingCount * vowelCount)
	return choList[li], jungList[vi], jongList[ti], true
}
