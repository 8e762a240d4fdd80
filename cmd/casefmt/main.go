package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/code-game-project/text-utils/cli"
	"github.com/code-game-project/text-utils/config"
	"github.com/code-game-project/text-utils/feedback"
)

const (
	progName    = "casefmt"
	FeedbackPkg = feedback.Package(progName)
)

type app struct {
	configPath string
	noColor    bool
	verbose    bool

	cfg          config.Config
	showProgress bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           progName,
		Short:         "Convert identifiers between naming formats and normalize text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", config.FilePath(), "Use the given config file")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Print debug messages")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newDashesCmd(),
		newURLEncodeCmd(),
		newTrimCmd(a),
		newFirstCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	cli.SetOutput(colorable.NewColorableStderr(), cfg.Color && !a.noColor)

	severity, err := feedback.ParseSeverity(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		severity = feedback.SeverityDebug
	}
	feedback.Enable(feedback.NewCLIFeedback(severity))

	a.showProgress = isTerminal(os.Stderr)
	feedback.Debug(FeedbackPkg, "Loaded config from %s (format: %s).", a.configPath, cfg.Format)
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isInteractive(in io.Reader) bool {
	return isTerminal(in) && isTerminal(os.Stdout)
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		if errors.Is(err, cli.ErrCanceled) {
			os.Exit(2)
		}
		cli.Error("%s", err)
		os.Exit(1)
	}
}
