package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/emitter"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
)

func newTypeCommand(g *globals) *cobra.Command {
	var (
		encoding  string
		noPreedit bool
	)
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Compose Hangul interactively in the terminal",
		Long: "Reads keys from the terminal and writes the composed text to stdout.\n" +
			"The configured toggle keys (ctrl+space by default) switch between Hangul and Latin input; " +
			"ctrl+c, ctrl+d or esc commits the pending block and exits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("type: stdin is not a terminal, use convert for piped input")
			}
			enc, err := emitter.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			out, err := emitter.NewWriter(crlfWriter{cmd.OutOrStdout()}, emitter.Options{Encoding: enc, Preedit: !noPreedit})
			if err != nil {
				return err
			}
			defer out.Close()

			if err := keyboard.Open(); err != nil {
				return fmt.Errorf("type: open keyboard: %w", err)
			}
			defer keyboard.Close()

			eng := engine.New(g.cfg)
			g.log.Info("typing session started", "layout", g.cfg.LayoutName, "mode", eng.Mode().String())
			return runTyping(cmd.Context(), eng, g.cfg, engine.NewPresenter(out), keyboard.GetKey, g.log.Logger)
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", string(emitter.EncodingUTF8), "output encoding: utf-8 or euc-kr")
	cmd.Flags().BoolVar(&noPreedit, "no-preedit", false, "write committed text only, without the live block")
	return cmd
}

type keySource func() (rune, keyboard.Key, error)

type keyAction int

const (
	actionPress keyAction = iota
	actionSkip
	actionQuit
)

// translateEvent maps a terminal key event onto a physical key.
func translateEvent(ch rune, k keyboard.Key) (key.Key, keyAction) {
	if ch != 0 {
		pressed, ok := key.FromChar(ch)
		if !ok {
			return key.Key{}, actionSkip
		}
		return pressed, actionPress
	}
	switch k {
	case keyboard.KeyCtrlC, keyboard.KeyCtrlD, keyboard.KeyEsc:
		return key.Key{}, actionQuit
	case keyboard.KeyCtrlSpace:
		return key.New(key.Space, key.Control), actionPress
	case keyboard.KeySpace:
		return key.New(key.Space, 0), actionPress
	case keyboard.KeyEnter:
		return key.New(key.Enter, 0), actionPress
	case keyboard.KeyTab:
		return key.New(key.Tab, 0), actionPress
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return key.New(key.Backspace, 0), actionPress
	default:
		return key.Key{}, actionSkip
	}
}

func runTyping(ctx context.Context, eng *engine.InputEngine, cfg *config.Config, p *engine.Presenter, next keySource, log *slog.Logger) error {
	for {
		if ctx != nil && ctx.Err() != nil {
			return p.Apply(eng.ClearPreedit(), "")
		}
		ch, code, err := next()
		if err != nil {
			return fmt.Errorf("type: read key: %w", err)
		}
		k, action := translateEvent(ch, code)
		switch action {
		case actionQuit:
			return p.Apply(eng.ClearPreedit(), "")
		case actionSkip:
			continue
		}

		result := eng.PressKey(cfg, k)
		if result.Kind == hangul.ResultToggleHangul {
			log.Debug("input mode toggled", "mode", eng.Mode().String())
		}
		if err := p.Apply(result, eng.PreeditStr()); err != nil {
			return err
		}
	}
}

// crlfWriter turns line feeds into CRLF for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(c.w, strings.ReplaceAll(string(p), "\n", "\r\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
