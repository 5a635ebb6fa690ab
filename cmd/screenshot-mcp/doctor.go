package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
)

func doctorCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the screen and clipboard are accessible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			failed := 0
			displays := imaging.NewDisplayScreen(cfg.CaptureOptions()).Displays()
			if len(displays) == 0 {
				report(w, "screen", imaging.ErrNoDisplay)
				failed++
			} else {
				bounds, err := imaging.FullScreenBounds(displays, cfg.CaptureOptions())
				if err != nil {
					report(w, "screen", err)
					failed++
				} else {
					report(w, "screen", nil, fmt.Sprintf("%d display(s), capture %v", len(displays), bounds))
				}
			}

			if err := imaging.NewSystemClipboard().Init(); err != nil {
				report(w, "clipboard", err)
				failed++
			} else {
				report(w, "clipboard", nil, "available")
			}

			if failed > 0 {
				return errors.Newf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func report(w io.Writer, check string, err error, details ...string) {
	if err != nil {
		_, _ = fmt.Fprintf(w, "FAIL  %-10s %s\n", check, err.Error())
		return
	}
	msg := ""
	if len(details) > 0 {
		msg = details[0]
	}
	_, _ = fmt.Fprintf(w, "OK    %-10s %s\n", check, msg)
}
