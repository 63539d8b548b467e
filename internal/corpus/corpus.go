// Package corpus holds keystroke sets with the output a reference input
// context produces for them.
package corpus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/oracle"
)

//go:embed default.yaml
var defaultCorpus []byte

type Step struct {
	Key         string `yaml:"key"`
	Preedit     string `yaml:"preedit,omitempty"`
	Commit      string `yaml:"commit,omitempty"`
	Passthrough bool   `yaml:"passthrough,omitempty"`
}

// Set is one keystroke sequence. Keys is a compact QWERTY string used when
// Steps are absent; such sets carry no per-key expectations.
type Set struct {
	Name   string `yaml:"name"`
	Keys   string `yaml:"keys,omitempty"`
	Steps  []Step `yaml:"steps,omitempty"`
	Commit string `yaml:"commit"`
}

type Corpus struct {
	Layout string `yaml:"layout"`
	Sets   []Set  `yaml:"sets"`
}

func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Corpus, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Corpus
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty corpus")
		}
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the embedded corpus.
func Default() *Corpus {
	c, err := Parse(defaultCorpus)
	if err != nil {
		panic(fmt.Sprintf("corpus: embedded default: %v", err))
	}
	return c
}

func (c *Corpus) validate() error {
	seen := make(map[string]struct{}, len(c.Sets))
	for i, set := range c.Sets {
		if set.Name == "" {
			return fmt.Errorf("set %d: missing name", i)
		}
		if _, dup := seen[set.Name]; dup {
			return fmt.Errorf("set %q: duplicate name", set.Name)
		}
		seen[set.Name] = struct{}{}
		if set.Keys != "" && len(set.Steps) > 0 {
			return fmt.Errorf("set %q: keys and steps are exclusive", set.Name)
		}
		if _, err := set.KeyStrokes(); err != nil {
			return fmt.Errorf("set %q: %w", set.Name, err)
		}
	}
	return nil
}

func (c *Corpus) Find(name string) (Set, bool) {
	for _, set := range c.Sets {
		if set.Name == name {
			return set, true
		}
	}
	return Set{}, false
}

func (c *Corpus) Names() []string {
	names := make([]string, 0, len(c.Sets))
	for _, set := range c.Sets {
		names = append(names, set.Name)
	}
	return names
}

// KeyStrokes returns the keys of the set in typing order.
func (s Set) KeyStrokes() ([]key.Key, error) {
	if len(s.Steps) == 0 {
		if s.Keys == "" {
			return nil, errors.New("no keys")
		}
		return key.Sequence(s.Keys)
	}
	keys := make([]key.Key, 0, len(s.Steps))
	for i, step := range s.Steps {
		k, err := key.Parse(step.Key)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Recorded reports whether the set carries per-key oracle output.
func (s Set) Recorded() bool {
	for _, step := range s.Steps {
		if step.Preedit != "" || step.Commit != "" || step.Passthrough {
			return true
		}
	}
	return false
}

// Transcript builds an oracle that replays the recorded steps.
func (s Set) Transcript() *oracle.Transcript {
	steps := make([]oracle.Step, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, oracle.Step{
			Consumed: !step.Passthrough,
			Preedit:  runesOrNil(step.Preedit),
			Commit:   runesOrNil(step.Commit),
		})
	}
	return oracle.NewTranscript(steps)
}

func runesOrNil(s string) []rune {
	if s == "" {
		return nil
	}
	return []rune(s)
}

// Repeat concatenates the keys of n copies of the set. Per-key expectations
// are dropped since the blocks of adjacent copies interact; the total commit
// is kept.
func Repeat(s Set, n int) Set {
	if n < 1 {
		n = 1
	}
	out := Set{
		Name:   fmt.Sprintf("%s*%d", s.Name, n),
		Keys:   strings.Repeat(s.Keys, n),
		Commit: strings.Repeat(s.Commit, n),
	}
	if len(s.Steps) > 0 {
		out.Steps = make([]Step, 0, len(s.Steps)*n)
		for i := 0; i < n; i++ {
			for _, step := range s.Steps {
				out.Steps = append(out.Steps, Step{Key: step.Key})
			}
		}
	}
	return out
}
