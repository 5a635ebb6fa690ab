// Command screenshot-mcp serves screen capture and clipboard image tools over MCP stdio.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/spf13/cobra"
	"github.com/tkuutti/screenshot-mcp/mcp"
	"github.com/tkuutti/screenshot-mcp/pkg/config"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
	"github.com/tkuutti/screenshot-mcp/tools"
)

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp", "cmd")

// version is set at build time
var version = "v0.1.0"

type flags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := rootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(in io.Reader, out io.Writer) *cobra.Command {
	f := new(flags)

	root := &cobra.Command{
		Use:           "screenshot-mcp",
		Short:         "MCP server to take screenshots and save clipboard images",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(os.Stderr)

	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "path to config file (yaml or json)")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: trace|debug|info|notice|warning|error|critical")

	root.AddCommand(serveCmd(f))
	root.AddCommand(toolsCmd(f))
	root.AddCommand(doctorCmd(f))
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

// load returns the configuration and sets up the logger.
// Logs always go to stderr, stdout carries the protocol.
func (f *flags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Logs.Level = f.logLevel
	}

	level, err := parseLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Logs.Format == "json" {
		xlog.SetFormatter(xlog.NewJSONFormatter(os.Stderr))
	} else {
		xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	}
	xlog.SetGlobalLogLevel(level)

	return cfg, nil
}

func parseLevel(s string) (xlog.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return xlog.TRACE, nil
	case "debug":
		return xlog.DEBUG, nil
	case "", "info":
		return xlog.INFO, nil
	case "notice":
		return xlog.NOTICE, nil
	case "warning", "warn":
		return xlog.WARNING, nil
	case "error":
		return xlog.ERROR, nil
	case "critical":
		return xlog.CRITICAL, nil
	}
	return xlog.INFO, errors.Newf("unsupported log level: %s", s)
}

// newDispatcher returns the catalog bound to the system screen and clipboard
func newDispatcher(cfg *config.Config) (*tools.Dispatcher, error) {
	return mcp.NewCatalog(mcp.Backend{
		Screen:    imaging.NewDisplayScreen(cfg.CaptureOptions()),
		Clipboard: imaging.NewSystemClipboard(),
		Writer:    imaging.NewWriter(cfg.OutputOptions()),
	})
}
