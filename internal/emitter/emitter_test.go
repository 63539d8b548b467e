package emitter

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/korean"
)

func TestWriterEmitterSendText(t *testing.T) {
	var buf bytes.Buffer
	out, err := NewWriter(&buf, Options{})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := out.SendText("만"); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if got := buf.String(); got != "만" {
		t.Fatalf("expected '만', got %q", got)
	}
	if out.SupportsPreedit() {
		t.Fatalf("expected preedit to be off by default")
	}
}

func TestWriterEmitterBackspaceUsesCellWidth(t *testing.T) {
	var buf bytes.Buffer
	out, err := NewWriter(&buf, Options{Preedit: true})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	_ = out.SendText("a만")
	if err := out.SendBackspace(2); err != nil {
		t.Fatalf("SendBackspace: %v", err)
	}
	want := "a만" + "\b\b  \b\b" + "\b \b"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if err := out.SendBackspace(1); err != nil {
		t.Fatalf("expected backspace past the start to be ignored, got %v", err)
	}
	if got := buf.String(); got != want {
		t.Fatalf("expected no further output, got %q", got)
	}
}

func TestWriterEmitterRejectsInvalidUTF8(t *testing.T) {
	out, _ := NewWriter(&bytes.Buffer{}, Options{})
	if err := out.SendText(string([]byte{0xff})); err == nil {
		t.Fatalf("expected invalid utf-8 to be rejected")
	}
}

func TestWriterEmitterEUCKR(t *testing.T) {
	var buf bytes.Buffer
	out, err := NewWriter(&buf, Options{Encoding: "EUC-KR"})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := out.SendText("안녕"); err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	decoded, err := korean.EUCKR.NewDecoder().Bytes(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != "안녕" {
		t.Fatalf("expected round trip through EUC-KR, got %q", decoded)
	}
	if bytes.Equal(buf.Bytes(), []byte("안녕")) {
		t.Fatalf("expected output to be re-encoded")
	}
}

func TestParseEncoding(t *testing.T) {
	if enc, err := ParseEncoding("UTF8"); err != nil || enc != EncodingUTF8 {
		t.Fatalf("expected utf-8, got %q (%v)", enc, err)
	}
	if enc, err := ParseEncoding("cp949"); err != nil || enc != EncodingEUCKR {
		t.Fatalf("expected euc-kr, got %q (%v)", enc, err)
	}
	if _, err := ParseEncoding("shift-jis"); err == nil {
		t.Fatalf("expected unsupported encoding error")
	}
}

func TestWriterEmitterBackspaceStopsAtLineBreak(t *testing.T) {
	var buf bytes.Buffer
	out, _ := NewWriter(&buf, Options{Preedit: true})
	_ = out.SendText("만\n")
	_ = out.SendText("a")
	if err := out.SendBackspace(3); err != nil {
		t.Fatalf("SendBackspace: %v", err)
	}
	want := "만\na" + "\b \b"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
