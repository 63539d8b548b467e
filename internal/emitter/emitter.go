package emitter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

type Encoding string

const (
	EncodingUTF8  Encoding = "utf-8"
	EncodingEUCKR Encoding = "euc-kr"
)

func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "euc-kr", "euckr", "cp949", "uhc":
		return EncodingEUCKR, nil
	default:
		return "", fmt.Errorf("unsupported output encoding '%s'", name)
	}
}

type Options struct {
	Encoding Encoding
	// Preedit renders the live block in place; without it only committed
	// text is written.
	Preedit bool
}

// WriterEmitter writes to a terminal-like stream. Erasing moves the cursor
// back over the display cells of the runes it wrote.
type WriterEmitter struct {
	out     io.Writer
	closer  io.Closer
	written []rune
	buffer  strings.Builder
	preedit bool
	closed  bool
}

func NewWriter(w io.Writer, opts Options) (*WriterEmitter, error) {
	enc, err := ParseEncoding(string(opts.Encoding))
	if err != nil {
		return nil, err
	}
	e := &WriterEmitter{out: w, preedit: opts.Preedit}
	if enc == EncodingEUCKR {
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(korean.EUCKR.NewEncoder()))
		e.out = tw
		e.closer = tw
	}
	return e, nil
}

func (e *WriterEmitter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.flushBuffer(); err != nil {
		return err
	}
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}

func (e *WriterEmitter) SendBackspace(count int) error {
	if err := e.flushBuffer(); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := e.mirrorBackspace(); err != nil {
			return err
		}
	}
	return e.flushBuffer()
}

func (e *WriterEmitter) SendText(text string) error {
	if text == "" {
		return nil
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("invalid utf-8 sequence")
	}
	e.buffer.WriteString(text)
	// Erasing never crosses a line break.
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		e.written = append(e.written[:0], []rune(text[i+1:])...)
	} else {
		e.written = append(e.written, []rune(text)...)
	}
	return e.flushBuffer()
}

func (e *WriterEmitter) SupportsPreedit() bool {
	return e.preedit
}

func (e *WriterEmitter) mirrorBackspace() error {
	if len(e.written) == 0 {
		return nil
	}
	last := e.written[len(e.written)-1]
	e.written = e.written[:len(e.written)-1]
	width := runewidth.RuneWidth(last)
	if width <= 0 {
		return nil
	}
	back := strings.Repeat("\b", width)
	e.buffer.WriteString(back)
	e.buffer.WriteString(strings.Repeat(" ", width))
	e.buffer.WriteString(back)
	return nil
}

func (e *WriterEmitter) flushBuffer() error {
	if e.buffer.Len() == 0 {
		return nil
	}
	data := e.buffer.String()
	e.buffer.Reset()
	_, err := io.WriteString(e.out, data)
	return err
}
