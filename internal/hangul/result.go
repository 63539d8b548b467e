package hangul

import "fmt"

type ResultKind uint8

// The zero ResultKind is not a valid result; every keystroke yields one of
// the kinds below.
const (
	ResultToggleHangul ResultKind = iota + 1
	ResultClearPreedit
	ResultBypass
	ResultCommit
	ResultCommitBypass
	ResultPreedit
	ResultCommitPreedit
	ResultCommitCommit
)

func (k ResultKind) String() string {
	switch k {
	case ResultToggleHangul:
		return "ToggleHangul"
	case ResultClearPreedit:
		return "ClearPreedit"
	case ResultBypass:
		return "Bypass"
	case ResultCommit:
		return "Commit"
	case ResultCommitBypass:
		return "CommitBypass"
	case ResultPreedit:
		return "Preedit"
	case ResultCommitPreedit:
		return "CommitPreedit"
	case ResultCommitCommit:
		return "CommitCommit"
	default:
		return fmt.Sprintf("ResultKind(%d)", uint8(k))
	}
}

// InputResult is the outcome of one keystroke. First and Second carry the
// characters of the kinds that have them:
//
//	Bypass(First)            the key is not consumed; First is its character
//	Commit(First)            First is committed
//	CommitBypass(First, Second)
//	CommitPreedit(First)     First is committed, a new block is in preedit
//	CommitCommit(First, Second)
//
// Preedit means the live block changed; query it from the composer.
type InputResult struct {
	Kind   ResultKind
	First  rune
	Second rune
}

func ToggleHangul() InputResult { return InputResult{Kind: ResultToggleHangul} }

func ClearPreedit() InputResult { return InputResult{Kind: ResultClearPreedit} }

func Bypass(ch rune) InputResult { return InputResult{Kind: ResultBypass, First: ch} }

func Commit(ch rune) InputResult { return InputResult{Kind: ResultCommit, First: ch} }

func CommitBypass(commit, bypass rune) InputResult {
	return InputResult{Kind: ResultCommitBypass, First: commit, Second: bypass}
}

func Preedit() InputResult { return InputResult{Kind: ResultPreedit} }

func CommitPreedit(ch rune) InputResult { return InputResult{Kind: ResultCommitPreedit, First: ch} }

func CommitCommit(first, second rune) InputResult {
	return InputResult{Kind: ResultCommitCommit, First: first, Second: second}
}

// HasPreedit reports whether a block is composing after the keystroke.
func (r InputResult) HasPreedit() bool {
	return r.Kind == ResultPreedit || r.Kind == ResultCommitPreedit
}

// Consumed reports whether the keystroke was handled by the composer rather
// than passed through.
func (r InputResult) Consumed() bool {
	return r.Kind != ResultBypass && r.Kind != ResultCommitBypass
}

// AppendOutput appends every character the keystroke adds to the output
// stream, committed and bypassed alike, in order. Bypassed keys without a
// character add nothing.
func (r InputResult) AppendOutput(dst []rune) []rune {
	switch r.Kind {
	case ResultToggleHangul, ResultClearPreedit, ResultPreedit:
		return dst
	case ResultBypass, ResultCommit, ResultCommitPreedit:
		return appendNonZero(dst, r.First)
	case ResultCommitBypass, ResultCommitCommit:
		return appendNonZero(appendNonZero(dst, r.First), r.Second)
	default:
		panic(fmt.Sprintf("hangul: unhandled result kind %s", r.Kind))
	}
}

// AppendCommit appends only the characters the composer commits, leaving out
// bypassed keys.
func (r InputResult) AppendCommit(dst []rune) []rune {
	switch r.Kind {
	case ResultToggleHangul, ResultClearPreedit, ResultPreedit, ResultBypass:
		return dst
	case ResultCommit, ResultCommitPreedit, ResultCommitBypass:
		return appendNonZero(dst, r.First)
	case ResultCommitCommit:
		return appendNonZero(appendNonZero(dst, r.First), r.Second)
	default:
		panic(fmt.Sprintf("hangul: unhandled result kind %s", r.Kind))
	}
}

func appendNonZero(dst []rune, ch rune) []rune {
	if ch == 0 {
		return dst
	}
	return append(dst, ch)
}

func (r InputResult) String() string {
	switch r.Kind {
	case ResultBypass, ResultCommit, ResultCommitPreedit:
		return fmt.Sprintf("%s(%q)", r.Kind, r.First)
	case ResultCommitBypass, ResultCommitCommit:
		return fmt.Sprintf("%s(%q, %q)", r.Kind, r.First, r.Second)
	default:
		return r.Kind.String()
	}
}
