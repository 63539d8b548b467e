// Package oracle wraps reference Hangul input contexts that the composition
// engine is checked against.
package oracle

import (
	"errors"
	"fmt"
)

// Oracle is a reference input context driven one ASCII key at a time.
// PreeditString returns nil when the context reports no preedit at all.
type Oracle interface {
	Process(ascii rune) bool
	PreeditString() []rune
	CommitString() []rune
	Flush() []rune
	Reset()
	Close() error
}

var ErrUnavailable = errors.New("oracle: libhangul support not compiled in (build with -tags libhangul)")

// Opener creates an oracle for a keyboard identifier such as "2".
type Opener func(layout string) (Oracle, error)

// With opens an oracle, runs fn and always releases the oracle, including
// when fn panics.
func With(open Opener, layout string, fn func(Oracle) error) (err error) {
	o, err := open(layout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := o.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("oracle: close: %w", cerr)
		}
	}()
	return fn(o)
}
