package engine

import "github.com/gg582/hanic/internal/hangul"

// CommitBuffer collects the text an application would end up with: committed
// blocks and bypassed characters in order.
type CommitBuffer struct {
	runes []rune
}

func (b *CommitBuffer) Apply(result hangul.InputResult) {
	b.runes = result.AppendOutput(b.runes)
}

func (b *CommitBuffer) Runes() []rune {
	return b.runes
}

func (b *CommitBuffer) String() string {
	return string(b.runes)
}

func (b *CommitBuffer) Len() int {
	return len(b.runes)
}

func (b *CommitBuffer) Reset() {
	b.runes = b.runes[:0]
}
