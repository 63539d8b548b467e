package emitter

// Output is what the presenter needs to show committed text and the live
// preedit block. It is satisfied by WriterEmitter and enables tests to
// substitute lightweight fakes.
type Output interface {
	Close() error
	SendBackspace(count int) error
	SendText(text string) error
	SupportsPreedit() bool
}

var _ Output = (*WriterEmitter)(nil)
