package hangul

type State int

const (
	StateEmpty State = iota
	StateLead
	StateLeadVowel
	StateLeadVowelTrail
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLead:
		return "HasLead"
	case StateLeadVowel:
		return "HasLeadVowel"
	case StateLeadVowelTrail:
		return "HasLeadVowelTrail"
	default:
		return "unknown"
	}
}

// slot is one position of the block. parts is set when the jamo was merged
// from two keystrokes and is what backspace and re-syllabification undo.
type slot struct {
	jamo  rune
	parts [2]rune
}

func single(ch rune) slot { return slot{jamo: ch} }

func (s slot) split() (first, second rune, ok bool) {
	if s.parts[0] == 0 {
		return 0, 0, false
	}
	return s.parts[0], s.parts[1], true
}

// Composer is the syllable-block automaton. The zero value is an empty
// composer. A lead is always present when any slot is filled.
type Composer struct {
	lead  slot
	vowel slot
	trail slot
	// fixedTrail marks a trail typed on a final-consonant key; it stays in
	// its block when a vowel follows.
	fixedTrail bool
}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) State() State {
	switch {
	case c.lead.jamo == 0:
		return StateEmpty
	case c.vowel.jamo == 0:
		return StateLead
	case c.trail.jamo == 0:
		return StateLeadVowel
	default:
		return StateLeadVowelTrail
	}
}

func (c *Composer) Empty() bool {
	return c.lead.jamo == 0
}

// Press advances the automaton by one classified keystroke. raw is the
// character the key types outside composition and is only reported for
// RoleNone keys.
func (c *Composer) Press(cs *Compounds, role JamoRole, raw rune) InputResult {
	if !role.Valid() {
		role = None()
	}
	switch role.Kind {
	case RoleLeading:
		return c.pressLead(cs, role.Jamo)
	case RoleVowel:
		return c.pressVowel(cs, role.Jamo)
	case RoleTrailing:
		return c.pressTrail(cs, role.Jamo, true)
	case RoleAuto:
		return c.pressAuto(cs, role.Jamo)
	default:
		return c.pressNone(raw)
	}
}

func (c *Composer) pressNone(raw rune) InputResult {
	if c.Empty() {
		return Bypass(raw)
	}
	return CommitBypass(c.take(), raw)
}

func (c *Composer) pressLead(cs *Compounds, ch rune) InputResult {
	switch c.State() {
	case StateEmpty:
		c.lead = single(ch)
		return Preedit()
	case StateLead:
		if merged, ok := cs.CombineLead(c.lead.jamo, ch); ok {
			c.lead = slot{jamo: merged, parts: [2]rune{c.lead.jamo, ch}}
			return Preedit()
		}
	}
	block := c.take()
	c.lead = single(ch)
	return CommitPreedit(block)
}

func (c *Composer) pressVowel(cs *Compounds, ch rune) InputResult {
	switch c.State() {
	case StateEmpty:
		return Bypass(ch)
	case StateLead:
		c.vowel = single(ch)
		return Preedit()
	case StateLeadVowel:
		if merged, ok := cs.CombineVowel(c.vowel.jamo, ch); ok {
			c.vowel = slot{jamo: merged, parts: [2]rune{c.vowel.jamo, ch}}
			return Preedit()
		}
		return CommitBypass(c.take(), ch)
	default:
		return c.resyllabify(ch)
	}
}

// resyllabify moves the trail (or the second half of a compound trail) onto
// a new block started by the vowel.
func (c *Composer) resyllabify(vowel rune) InputResult {
	if c.fixedTrail {
		return CommitBypass(c.take(), vowel)
	}
	keep, moved := rune(0), c.trail.jamo
	if first, second, ok := c.trail.split(); ok && IsLead(second) {
		keep, moved = first, second
	}
	if !IsLead(moved) {
		return CommitBypass(c.take(), vowel)
	}
	c.trail = single(keep)
	block := c.take()
	c.lead = single(moved)
	c.vowel = single(vowel)
	return CommitPreedit(block)
}

func (c *Composer) pressTrail(cs *Compounds, ch rune, fixed bool) InputResult {
	switch c.State() {
	case StateEmpty:
		return Bypass(ch)
	case StateLead:
		return CommitCommit(c.take(), ch)
	case StateLeadVowel:
		c.trail = single(ch)
		c.fixedTrail = fixed
		return Preedit()
	default:
		if merged, ok := cs.CombineTrail(c.trail.jamo, ch); ok {
			c.trail = slot{jamo: merged, parts: [2]rune{c.trail.jamo, ch}}
			c.fixedTrail = c.fixedTrail || fixed
			return Preedit()
		}
		return CommitCommit(c.take(), ch)
	}
}

func (c *Composer) pressAuto(cs *Compounds, ch rune) InputResult {
	switch c.State() {
	case StateEmpty, StateLead:
		if IsLead(ch) {
			return c.pressLead(cs, ch)
		}
		return c.pressTrail(cs, ch, false)
	case StateLeadVowel:
		if IsTrail(ch) {
			return c.pressTrail(cs, ch, false)
		}
		return c.pressLead(cs, ch)
	default:
		if _, ok := cs.CombineTrail(c.trail.jamo, ch); ok || !IsLead(ch) {
			return c.pressTrail(cs, ch, false)
		}
		return c.pressLead(cs, ch)
	}
}

// Backspace removes the most recently typed jamo. A compound merged from two
// keystrokes falls back to its first component; one typed on a single key is
// removed whole.
func (c *Composer) Backspace() InputResult {
	switch c.State() {
	case StateEmpty:
		return Bypass('\b')
	case StateLead:
		c.lead = shrink(c.lead)
	case StateLeadVowel:
		c.vowel = shrink(c.vowel)
	default:
		c.trail = shrink(c.trail)
	}
	if c.Empty() {
		return ClearPreedit()
	}
	return Preedit()
}

func shrink(s slot) slot {
	if first, _, ok := s.split(); ok {
		return single(first)
	}
	return slot{}
}

// Preedit renders the live block without changing state.
func (c *Composer) Preedit() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.render(), true
}

// Flush commits the live block and empties the composer.
func (c *Composer) Flush() (rune, bool) {
	if c.Empty() {
		return 0, false
	}
	return c.take(), true
}

// Reset discards all state, returning the block that was pending.
func (c *Composer) Reset() (rune, bool) {
	block, ok := c.Flush()
	*c = Composer{}
	return block, ok
}

func (c *Composer) take() rune {
	block := c.render()
	*c = Composer{}
	return block
}

func (c *Composer) render() rune {
	if c.vowel.jamo == 0 {
		return c.lead.jamo
	}
	if syllable, ok := Compose(c.lead.jamo, c.vowel.jamo, c.trail.jamo); ok {
		return syllable
	}
	return c.lead.jamo
}
