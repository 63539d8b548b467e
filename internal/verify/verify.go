// Package verify drives the composition engine and a reference oracle with
// the same keystrokes and reports the first point where they disagree.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/corpus"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/logging"
	"github.com/gg582/hanic/internal/oracle"
	"github.com/gg582/hanic/internal/types"
)

// Final is the Divergence index of checks made after the last key.
const Final = -1

// Divergence is the only failure the harness reports: the engine and the
// reference produced different output.
type Divergence struct {
	Set    string
	Index  int
	Key    key.Key
	Field  string
	Engine string
	Oracle string
}

func (d *Divergence) Error() string {
	where := "at end"
	switch {
	case d.Index == Final:
	case d.Key.Code == 0:
		where = fmt.Sprintf("at %d", d.Index)
	default:
		where = fmt.Sprintf("at key %d (%s)", d.Index, d.Key)
	}
	return fmt.Sprintf("set %s: %s diverged %s: engine %q, oracle %q", d.Set, d.Field, where, d.Engine, d.Oracle)
}

// Runner carries the logger used while checking sets.
type Runner struct {
	Logger *slog.Logger
}

func NewRunner(logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{Logger: logger.Logger}
}

func (r *Runner) logger() *slog.Logger {
	if r == nil || r.Logger == nil {
		return logging.Discard().Logger
	}
	return r.Logger
}

// Run checks set against o. A nil oracle only checks the set's expected
// commit. The engine is reset and put in Hangul mode first.
func Run(ctx context.Context, eng *engine.InputEngine, cfg *config.Config, o oracle.Oracle, set corpus.Set) error {
	return (*Runner)(nil).Run(ctx, eng, cfg, o, set)
}

func (r *Runner) Run(ctx context.Context, eng *engine.InputEngine, cfg *config.Config, o oracle.Oracle, set corpus.Set) error {
	log := r.logger().With(slog.String("set", set.Name))
	keys, err := set.KeyStrokes()
	if err != nil {
		return fmt.Errorf("set %s: %w", set.Name, err)
	}

	eng.Reset()
	eng.SetMode(types.ModeHangul)
	if o != nil {
		o.Reset()
	}

	var out engine.CommitBuffer
	var want []rune
	for i, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		out.Apply(eng.PressKey(cfg, k))
		if o == nil {
			continue
		}

		ch := k.Char()
		processed := o.Process(ch)
		want = append(want, o.CommitString()...)
		got, expected := eng.PreeditStr(), string(o.PreeditString())
		if !processed {
			want = append(want, o.Flush()...)
			if ch != 0 {
				want = append(want, ch)
			}
		}
		log.Debug("key", slog.Int("index", i), slog.String("key", k.String()),
			slog.String("preedit", got), slog.String("oracle_preedit", expected))
		if got != expected {
			return r.diverged(&Divergence{Set: set.Name, Index: i, Key: k, Field: "preedit", Engine: got, Oracle: expected})
		}
	}

	out.Apply(eng.ClearPreedit())
	if o != nil {
		want = append(want, o.Flush()...)
		if out.String() != string(want) {
			return r.diverged(&Divergence{Set: set.Name, Index: Final, Field: "commit", Engine: out.String(), Oracle: string(want)})
		}
	}
	if set.Commit != "" && out.String() != set.Commit {
		return r.diverged(&Divergence{Set: set.Name, Index: Final, Field: "expected commit", Engine: out.String(), Oracle: set.Commit})
	}
	log.Info("set matched", slog.Int("keys", len(keys)), slog.String("commit", out.String()))
	return nil
}

// Stress feeds the set n times, flushing and resetting the engine between
// repetitions, and checks that exactly n copies of its commit come out.
func Stress(eng *engine.InputEngine, cfg *config.Config, set corpus.Set, n int) error {
	return (*Runner)(nil).Stress(eng, cfg, set, n)
}

func (r *Runner) Stress(eng *engine.InputEngine, cfg *config.Config, set corpus.Set, n int) error {
	keys, err := set.KeyStrokes()
	if err != nil {
		return fmt.Errorf("set %s: %w", set.Name, err)
	}
	eng.Reset()
	eng.SetMode(types.ModeHangul)

	var total engine.CommitBuffer
	for rep := 0; rep < n; rep++ {
		start := total.Len()
		for _, k := range keys {
			total.Apply(eng.PressKey(cfg, k))
		}
		total.Apply(eng.ClearPreedit())
		eng.Reset()
		if set.Commit != "" {
			if got := string(total.Runes()[start:]); got != set.Commit {
				return r.diverged(&Divergence{Set: set.Name, Index: rep, Field: "repetition", Engine: got, Oracle: set.Commit})
			}
		}
	}
	if set.Commit != "" {
		if want := strings.Repeat(set.Commit, n); total.String() != want {
			return r.diverged(&Divergence{Set: set.Name, Index: Final, Field: "stress commit", Engine: total.String(), Oracle: want})
		}
	}
	r.logger().Info("stress passed", slog.String("set", set.Name), slog.Int("n", n), slog.Int("runes", total.Len()))
	return nil
}

func (r *Runner) diverged(d *Divergence) error {
	r.logger().Warn("divergence", slog.String("set", d.Set), slog.Int("index", d.Index),
		slog.String("field", d.Field), slog.String("engine", d.Engine), slog.String("oracle", d.Oracle))
	return d
}
