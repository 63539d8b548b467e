package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gg582/hanic/internal/app"
	"github.com/gg582/hanic/internal/common"
	"github.com/gg582/hanic/internal/emitter"
)

func newConvertCommand(g *globals) *cobra.Command {
	var (
		encoding string
		remote   bool
		socket   string
	)
	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert QWERTY-typed text into Hangul line by line",
		Long: "Reads lines from the given files, or stdin, as if typed on the configured layout " +
			"and prints the composed text. With --remote the lines are sent to a running `hanic serve`; " +
			"conversion falls back to local when the server cannot be reached.",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := emitter.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			out, err := emitter.NewWriter(cmd.OutOrStdout(), emitter.Options{Encoding: enc})
			if err != nil {
				return err
			}
			defer out.Close()

			c := &converter{g: g, out: out, remote: remote, socket: socket}
			if len(args) == 0 {
				return c.run(cmd.InOrStdin())
			}
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				err = c.run(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", string(emitter.EncodingUTF8), "output encoding: utf-8 or euc-kr")
	cmd.Flags().BoolVar(&remote, "remote", false, "convert through a running translation server")
	cmd.Flags().StringVar(&socket, "socket", common.DefaultSocketPath(), "translation server socket")
	return cmd
}

type converter struct {
	g      *globals
	out    emitter.Output
	remote bool
	socket string
}

func (c *converter) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		if err := c.out.SendText(c.convert(scanner.Text()) + "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *converter) convert(line string) string {
	if c.remote {
		converted, err := app.TranslateViaSocket(c.socket, line)
		if err == nil {
			return converted
		}
		c.g.log.Warn("falling back to local conversion", "socket", c.socket, "error", err)
		c.remote = false
	}
	return app.Translate(c.g.cfg, line)
}
