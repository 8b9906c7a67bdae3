package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chemtrans/internal/app"
	"github.com/heartmarshall/chemtrans/internal/config"
	"github.com/heartmarshall/chemtrans/internal/transport/terminal"
)

// skipConfig marks commands that run without loading configuration.
const skipConfig = "skip-config"

// errNoResult makes lookup exit 1 after its output is already printed.
var errNoResult = errors.New("no result")

// cli holds flags and dependencies shared by the subcommands.
type cli struct {
	cfgFile  string
	output   string
	logLevel string

	in     *os.File
	out    io.Writer
	errOut io.Writer

	// cfg and app are populated by PersistentPreRunE.
	cfg *config.Config
	app *app.App
}

func newRootCmd(in *os.File, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "chemtrans",
		Short: "Translate chemical names and molecular formulas via PubChem",
		Long: `chemtrans looks up a chemical name (water) or a molecular formula (H2O)
in PubChem and prints the matching formula or IUPAC name.

Input with at least one digit is treated as a formula, anything else as a name.
Without a subcommand an interactive prompt is started.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runInteractive,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "path to config file (YAML)")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", "", "output format: text, json, yaml, html")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Annotations[skipConfig] != "" {
			return nil
		}

		cfg, err := config.Load(c.cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Flags take precedence over file and environment.
		if cmd.Flags().Changed("output") {
			cfg.Output.Format = c.output
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = c.logLevel
		}

		c.cfg = cfg
		c.app = app.New(cfg, app.NewLogger(cfg.Log))
		return nil
	}

	root.AddCommand(
		newInteractiveCmd(c),
		newLookupCmd(c),
		newFormatCmd(c),
		newClassifyCmd(c),
		newEnvCmd(c),
		newVersionCmd(c),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, in *os.File, out, errOut io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(in, out, errOut)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNoResult) {
			fmt.Fprintln(errOut, "Error:", err)
		}
		return 1
	}
	return 0
}

func (c *cli) renderer() (*terminal.Renderer, error) {
	return terminal.NewRenderer(c.cfg.Output.Format, c.out)
}

// indicator returns a loading indicator on stderr, animated on a terminal.
// With onlyTTY it returns nil when stderr is not a terminal. With prompting
// it never animates, since the prompt redraws the same terminal.
func (c *cli) indicator(onlyTTY, prompting bool) *terminal.Indicator {
	tty := false
	if f, ok := c.errOut.(*os.File); ok {
		tty = terminal.IsTerminal(f)
	}
	if onlyTTY && !tty {
		return nil
	}
	return newIndicator(c.errOut, tty, prompting)
}

func newIndicator(w io.Writer, tty, prompting bool) *terminal.Indicator {
	return terminal.NewIndicator(w, tty && !prompting)
}
