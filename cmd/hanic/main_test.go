package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/require"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/emitter"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/key"
	"github.com/gg582/hanic/internal/layout"
	"github.com/gg582/hanic/internal/logging"
	"github.com/gg582/hanic/internal/types"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "hanic.ini")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o644))
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath, "--log-output", "discard"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "dkssudgktpdy\nqhwk qhkw\n", "convert")
	require.NoError(t, err)
	require.Equal(t, "안녕하세요\n보자 봦\n", out)
}

func TestConvertCommandRejectsEncoding(t *testing.T) {
	_, err := execute(t, "aks\n", "convert", "--encoding", "latin1")
	require.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "", "verify", "--oracle", "transcript")
	require.NoError(t, err)
	require.Contains(t, out, "ok   man\n")
	require.Contains(t, out, "ok   annyeonghaseyo\n")

	_, err = execute(t, "", "verify", "--set", "nosuchset")
	require.Error(t, err)
}

func TestLibhangulKeyboard(t *testing.T) {
	cfg := config.Default()
	id, err := libhangulKeyboard(cfg)
	require.NoError(t, err)
	require.Equal(t, "2", id)

	three, err := cfg.WithLayout("sebeolsik-390")
	require.NoError(t, err)
	id, err = libhangulKeyboard(three)
	require.NoError(t, err)
	require.Equal(t, "39", id)

	custom, err := layout.ParseCustom("name = \"mine\"\nbase = \"39\"\n")
	require.NoError(t, err)
	cfg.Layout = custom
	_, err = libhangulKeyboard(cfg)
	require.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "", "bench", "--n", "5,50", "--iterations", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "5 "))
	require.True(t, strings.HasPrefix(lines[2], "50 "))
}

func TestLayoutsCommand(t *testing.T) {
	out, err := execute(t, "", "layouts")
	require.NoError(t, err)
	require.Equal(t, "* 2\n  39\n", out)

	out, err = execute(t, "", "layouts", "2")
	require.NoError(t, err)
	require.Contains(t, out, "shift+KEY_R")

	_, err = execute(t, "", "--layout", "qwertz", "layouts")
	require.Error(t, err)
}

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		ch     rune
		code   keyboard.Key
		want   key.Key
		action keyAction
	}{
		{'a', 0, key.New(key.A, 0), actionPress},
		{'R', 0, key.New(key.R, key.Shift), actionPress},
		{'한', 0, key.Key{}, actionSkip},
		{0, keyboard.KeyCtrlSpace, key.New(key.Space, key.Control), actionPress},
		{0, keyboard.KeySpace, key.New(key.Space, 0), actionPress},
		{0, keyboard.KeyBackspace2, key.New(key.Backspace, 0), actionPress},
		{0, keyboard.KeyEnter, key.New(key.Enter, 0), actionPress},
		{0, keyboard.KeyCtrlC, key.Key{}, actionQuit},
		{0, keyboard.KeyEsc, key.Key{}, actionQuit},
		{0, keyboard.KeyArrowUp, key.Key{}, actionSkip},
	}
	for _, tt := range tests {
		got, action := translateEvent(tt.ch, tt.code)
		if got != tt.want || action != tt.action {
			t.Fatalf("expected %s/%d for (%q, %d), got %s/%d", tt.want, tt.action, tt.ch, tt.code, got, action)
		}
	}
}

type event struct {
	ch   rune
	code keyboard.Key
}

func scripted(events ...event) keySource {
	return func() (rune, keyboard.Key, error) {
		if len(events) == 0 {
			return 0, 0, errors.New("script exhausted")
		}
		ev := events[0]
		events = events[1:]
		return ev.ch, ev.code, nil
	}
}

func TestRunTyping(t *testing.T) {
	cfg := config.Default()
	eng := engine.New(cfg)
	var buf bytes.Buffer
	out, err := emitter.NewWriter(&buf, emitter.Options{})
	require.NoError(t, err)

	source := scripted(
		event{'a', 0}, event{'k', 0}, event{'s', 0},
		event{0, keyboard.KeyCtrlSpace},
		event{'a', 0},
		event{0, keyboard.KeyCtrlSpace},
		event{'r', 0}, event{'k', 0},
		event{0, keyboard.KeyCtrlC},
	)
	err = runTyping(context.Background(), eng, cfg, engine.NewPresenter(out), source, logging.Discard().Logger)
	require.NoError(t, err)
	require.Equal(t, "만a가", buf.String())
	require.Equal(t, types.ModeHangul, eng.Mode())
}

func TestRunTypingReportsReadErrors(t *testing.T) {
	cfg := config.Default()
	out, _ := emitter.NewWriter(io.Discard, emitter.Options{})
	err := runTyping(context.Background(), engine.New(cfg), cfg, engine.NewPresenter(out), scripted(), logging.Discard().Logger)
	require.ErrorContains(t, err, "script exhausted")
}

func TestCRLFWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := crlfWriter{&buf}.Write([]byte("만\n"))
	require.NoError(t, err)
	require.Equal(t, len("만\n"), n)
	require.Equal(t, "만\r\n", buf.String())
}
