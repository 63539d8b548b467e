package engine

import (
	"sync"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/types"
)

// InputEngine is one input session. It is not safe for concurrent use; run
// one engine per input context.
type InputEngine struct {
	composer hangul.Composer
	mode     types.InputMode
	commit   []rune
}

func New(cfg *config.Config) *InputEngine {
	mode := types.ModeHangul
	if cfg != nil {
		mode = cfg.DefaultMode
	}
	return &InputEngine{mode: mode}
}

// defaultConfig serves PressKey calls made without a configuration.
var defaultConfig = sync.OnceValue(config.Default)

// PressKey feeds one keystroke. Toggle keys switch the mode and leave any
// pending block in place; the next key commits it. Backspace edits the block
// only in Hangul mode. A nil cfg uses the default configuration.
func (e *InputEngine) PressKey(cfg *config.Config, k key.Key) hangul.InputResult {
	if cfg == nil {
		cfg = defaultConfig()
	}
	if cfg.IsToggle(k) {
		e.mode = e.mode.Toggled()
		return hangul.ToggleHangul()
	}

	var result hangul.InputResult
	switch {
	case k.Code == key.Backspace && k.Mods.Composing() && e.mode == types.ModeHangul:
		result = e.composer.Backspace()
	case e.mode == types.ModeHangul:
		result = e.composer.Press(cfg.Layout.Compounds(), cfg.Layout.Classify(k), rawChar(k))
	default:
		result = e.composer.Press(nil, hangul.None(), rawChar(k))
	}
	e.commit = result.AppendCommit(e.commit)
	return result
}

func rawChar(k key.Key) rune {
	if !k.Mods.Composing() {
		return 0
	}
	return k.Char()
}

// PreeditStr returns the live block, or "" when nothing is composing.
func (e *InputEngine) PreeditStr() string {
	block, ok := e.composer.Preedit()
	if !ok {
		return ""
	}
	return string(block)
}

// ClearPreedit commits the live block.
func (e *InputEngine) ClearPreedit() hangul.InputResult {
	block, ok := e.composer.Flush()
	if !ok {
		return hangul.ClearPreedit()
	}
	e.commit = append(e.commit, block)
	return hangul.Commit(block)
}

func (e *InputEngine) Flush() (rune, bool) {
	block, ok := e.composer.Flush()
	if ok {
		e.commit = append(e.commit, block)
	}
	return block, ok
}

// CommitStr returns everything committed since the last ClearCommit or Reset.
func (e *InputEngine) CommitStr() string {
	return string(e.commit)
}

func (e *InputEngine) ClearCommit() {
	e.commit = e.commit[:0]
}

// Reset discards the live block and the commit string. The mode is kept.
func (e *InputEngine) Reset() (rune, bool) {
	e.commit = e.commit[:0]
	return e.composer.Reset()
}

func (e *InputEngine) Mode() types.InputMode {
	return e.mode
}

func (e *InputEngine) SetMode(mode types.InputMode) {
	e.mode = mode
}

func (e *InputEngine) State() hangul.State {
	return e.composer.State()
}
