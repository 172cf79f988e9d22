package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dvcrn/ht/internal/logger"
)

// Version is the release version. Overridable at build time with -ldflags.
var Version = "1.0.0"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "ht",
		Short: "A command-line HTTP client with pretty output",
		Long: `ht sends a single HTTP request and pretty-prints the response:
status line, headers, and a syntax-highlighted body for JSON and HTML.

Examples:
  ht get https://httpbin.org/get
  ht post https://httpbin.org/post name=john lang=go
  ht -v get https://example.com`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetDebug()
			}
			logger.Get().Debug().
				Str("command", cmd.Name()).
				Strs("args", args).
				Msg("parsed command")
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log request details to stderr")
	root.AddCommand(newGetCmd(), newPostCmd())
	return root
}

// Execute runs the CLI. The context cancels the in-flight request when the
// process is interrupted.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
