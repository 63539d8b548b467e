package hangul

// Compounds lists the digraphs a layout allows to merge in each position.
// Pairs missing from a table never merge.
type Compounds struct {
	Lead  map[[2]rune]rune
	Vowel map[[2]rune]rune
	Trail map[[2]rune]rune
}

func (c *Compounds) CombineLead(a, b rune) (rune, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Lead[[2]rune{a, b}]
	return v, ok
}

func (c *Compounds) CombineVowel(a, b rune) (rune, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Vowel[[2]rune{a, b}]
	return v, ok
}

func (c *Compounds) CombineTrail(a, b rune) (rune, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Trail[[2]rune{a, b}]
	return v, ok
}

func (c *Compounds) Clone() *Compounds {
	if c == nil {
		return &Compounds{}
	}
	return &Compounds{
		Lead:  cloneTable(c.Lead),
		Vowel: cloneTable(c.Vowel),
		Trail: cloneTable(c.Trail),
	}
}

func cloneTable(src map[[2]rune]rune) map[[2]rune]rune {
	dst := make(map[[2]rune]rune, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var (
	doubleInitial = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	doubleMedial = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	doubleFinal = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
	doubleFinalRepeat = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
)

// TwoSetCompounds is the merge set of the standard two-set keyboard: compound
// vowels and compound trails, no doubled leads (those sit on shifted keys).
func TwoSetCompounds() *Compounds {
	return &Compounds{
		Lead:  map[[2]rune]rune{},
		Vowel: cloneTable(doubleMedial),
		Trail: cloneTable(doubleFinal),
	}
}

// ThreeSetCompounds also doubles leads and trails typed twice.
func ThreeSetCompounds() *Compounds {
	trail := cloneTable(doubleFinal)
	for k, v := range doubleFinalRepeat {
		trail[k] = v
	}
	return &Compounds{
		Lead:  cloneTable(doubleInitial),
		Vowel: cloneTable(doubleMedial),
		Trail: trail,
	}
}
