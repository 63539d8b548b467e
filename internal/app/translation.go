// Package app holds the line translation service: QWERTY text in, composed
// Hangul out, locally or over a unix socket.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/gg582/hanic/internal/common"
	"github.com/gg582/hanic/internal/config"
	"github.com/gg582/hanic/internal/engine"
	"github.com/gg582/hanic/internal/hangul"
	"github.com/gg582/hanic/internal/key"
)

// Translate types text on a fresh engine and returns what an application
// would receive. Characters no QWERTY key produces end the pending block and
// are copied through.
func Translate(cfg *config.Config, text string) string {
	eng := engine.New(cfg)
	var out engine.CommitBuffer
	for _, r := range text {
		k, ok := key.FromChar(r)
		if !ok {
			out.Apply(eng.ClearPreedit())
			out.Apply(hangul.Bypass(r))
			continue
		}
		out.Apply(eng.PressKey(cfg, k))
	}
	out.Apply(eng.ClearPreedit())
	return out.String()
}

// TranslateLines translates r line by line into w, flushing after every line.
func TranslateLines(cfg *config.Config, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	for scanner.Scan() {
		if _, err := writer.WriteString(Translate(cfg, scanner.Text())); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

type TranslationServer struct {
	listener net.Listener
	socket   string
	errCh    chan error
}

func StartTranslationServer(path string, cfg *config.Config, logger *slog.Logger) (*TranslationServer, error) {
	if path == "" {
		return nil, errors.New("translation server: empty socket path")
	}
	if err := common.EnsureSocketDir(path); err != nil {
		return nil, fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o660); err != nil && !errors.Is(err, os.ErrNotExist) {
		listener.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	srv := &TranslationServer{listener: listener, socket: path, errCh: make(chan error, 1)}
	go func() {
		srv.errCh <- serveTranslations(listener, cfg, logger)
		close(srv.errCh)
	}()
	return srv, nil
}

func (s *TranslationServer) Addr() string {
	if s == nil {
		return ""
	}
	return s.socket
}

func (s *TranslationServer) Close() {
	if s == nil {
		return
	}
	s.listener.Close()
	for range s.errCh {
	}
	_ = os.Remove(s.socket)
}

func (s *TranslationServer) Err() <-chan error {
	if s == nil {
		return nil
	}
	return s.errCh
}

func serveTranslations(listener net.Listener, cfg *config.Config, logger *slog.Logger) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go func(c net.Conn) {
			defer c.Close()
			if err := TranslateLines(cfg, c, c); err != nil && !errors.Is(err, net.ErrClosed) {
				logger.Warn("translation connection failed", slog.Any("error", err))
			}
		}(conn)
	}
}

// TranslateViaSocket sends one line to a running translation server.
func TranslateViaSocket(socketPath, text string) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := fmt.Fprintln(conn, text); err != nil {
		return "", err
	}
	response, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(response, "\n"), nil
}
