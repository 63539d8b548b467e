package engine

import (
	"unicode/utf8"

	"github.com/gg582/hanic/internal/emitter"
	"github.com/gg582/hanic/internal/hangul"
)

// Presenter mirrors results onto an Output: committed text is written and the
// live block is redrawn in place when the output supports preedit.
type Presenter struct {
	out     emitter.Output
	preedit string
	scratch []rune
}

func NewPresenter(out emitter.Output) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Preedit() string {
	return p.preedit
}

// Apply renders one result. preedit is the engine's live block after the
// keystroke.
func (p *Presenter) Apply(result hangul.InputResult, preedit string) error {
	if !p.out.SupportsPreedit() {
		preedit = ""
	}
	p.scratch = result.AppendOutput(p.scratch[:0])
	if len(p.scratch) == 0 {
		return p.replacePreedit(preedit)
	}
	if err := p.replacePreedit(""); err != nil {
		return err
	}
	for _, ch := range p.scratch {
		if err := p.send(ch); err != nil {
			return err
		}
	}
	return p.replacePreedit(preedit)
}

func (p *Presenter) send(ch rune) error {
	if ch == '\b' {
		return p.out.SendBackspace(1)
	}
	return p.out.SendText(string(ch))
}

func (p *Presenter) replacePreedit(newText string) error {
	if newText == p.preedit {
		return nil
	}
	if p.preedit != "" {
		if count := utf8.RuneCountInString(p.preedit); count > 0 {
			if err := p.out.SendBackspace(count); err != nil {
				return err
			}
		}
	}
	if newText != "" {
		if err := p.out.SendText(newText); err != nil {
			return err
		}
	}
	p.preedit = newText
	return nil
}
