package oracle

// Step is what a reference context reported after one key: whether it
// consumed the key, its preedit and its commit string.
type Step struct {
	Consumed bool
	Preedit  []rune
	Commit   []rune
}

// Transcript replays a recorded oracle session. Flush returns the current
// preedit, as libhangul does.
type Transcript struct {
	steps   []Step
	pos     int
	preedit []rune
	commit  []rune
	closed  bool
}

func NewTranscript(steps []Step) *Transcript {
	return &Transcript{steps: steps}
}

// Process advances to the next recorded step. Keys past the end of the
// recording are reported as not consumed.
func (t *Transcript) Process(ascii rune) bool {
	if t.pos >= len(t.steps) {
		t.preedit, t.commit = nil, nil
		return false
	}
	step := t.steps[t.pos]
	t.pos++
	t.preedit = step.Preedit
	t.commit = step.Commit
	return step.Consumed
}

func (t *Transcript) PreeditString() []rune { return t.preedit }

func (t *Transcript) CommitString() []rune { return t.commit }

func (t *Transcript) Flush() []rune {
	out := t.preedit
	t.preedit, t.commit = nil, nil
	return out
}

// Reset rewinds to the start of the recording.
func (t *Transcript) Reset() {
	t.pos = 0
	t.preedit, t.commit = nil, nil
}

func (t *Transcript) Remaining() int {
	return len(t.steps) - t.pos
}

func (t *Transcript) Close() error {
	t.closed = true
	return nil
}

func (t *Transcript) Closed() bool {
	return t.closed
}

// TranscriptOpener returns an Opener handing out t, ignoring the layout.
func TranscriptOpener(t *Transcript) Opener {
	return func(string) (Oracle, error) {
		t.Reset()
		return t, nil
	}
}
