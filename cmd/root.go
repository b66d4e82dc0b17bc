// Package cmd provides the root command and CLI setup for linegrep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"linegrep.dev/pkg/linegrep/internal/adapter"
	"linegrep.dev/pkg/linegrep/internal/controller"
	"linegrep.dev/pkg/linegrep/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const rootLongDescription = `Search each PATH for lines matching the regular expression PATTERN.

With no PATH, or when PATH is "-", standard input is read. Directories are
skipped unless -r is given. Flags may appear anywhere on the command line;
any other word starting with "-" is taken as the pattern or a path.

Settings that do not change which lines are printed (worker count, depth
limit, logging) are read from ./linegrep.yaml and LINEGREP_* variables.`

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linegrep [FLAGS] PATTERN [PATH...]",
		Short: "Print lines matching a regular expression",
		Long:  rootLongDescription,
		// domain.ParseArgs owns the token stream: flags interleave with
		// positionals and unknown dash-words are not errors.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runSearch,
	}

	describeFlags(cmd.Flags())

	return cmd
}

// describeFlags declares the recognised flags so they appear in the help
// text. They are parsed by domain.ParseArgs, not by pflag.
func describeFlags(flags *pflag.FlagSet) {
	flags.Bool("help", false, "show this help")
	flags.BoolP("recursive", "r", false, "descend into directories")
	flags.BoolP("no-filename", "h", false, "omit the path: prefix from output lines")
	flags.BoolP("invert-match", "v", false, "print lines that do not match")
}

func runSearch(cmd *cobra.Command, args []string) error {
	configureLogger(viper.GetString(logFilenameKey))

	if configErr != nil {
		slog.Warn("Failed to read config file", "error", configErr)
	}

	inv := domain.ParseArgs(args)
	if inv.Help || inv.Pattern == "" {
		return cmd.Help()
	}

	ui := controller.NewSimpleUI(cmd, isTerminal(cmd))
	searcher := domain.NewSearcher(fsAdapter, ui, cmd.InOrStdin(), searchConfig())

	err := searcher.Search(cmd.Context(), inv)
	if errors.Is(err, domain.ErrInvalidPattern) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "ERR: pattern: %s, err: %v\n", inv.Pattern, err)
	}

	return err
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && controller.IsTTY(f)
}

// reported tells whether err was already printed to stderr.
func reported(err error) bool {
	return errors.Is(err, domain.ErrTargetsFailed) ||
		errors.Is(err, domain.ErrInvalidPattern) ||
		errors.Is(err, context.Canceled)
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !reported(err) {
			rootCmd.PrintErrln("ERR:", err)
		}

		os.Exit(1)
	}
}
