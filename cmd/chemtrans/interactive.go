package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/chemtrans/internal/service/translate"
	"github.com/heartmarshall/chemtrans/internal/transport/terminal"
)

func newInteractiveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start the interactive prompt (default)",
		Long: `Prompts for a chemical name or formula and prints the result.
Type exit or quit, press Ctrl-C, or close stdin to leave.

On a terminal lookups run in the background and a second entry made while one
is in flight is answered with a busy message. With piped input lines are
looked up one after another.`,
		Args: cobra.NoArgs,
		RunE: c.runInteractive,
	}
}

func (c *cli) runInteractive(cmd *cobra.Command, _ []string) error {
	r, err := c.renderer()
	if err != nil {
		return err
	}

	tty := terminal.IsTerminal(c.in)

	// Piped sessions keep stderr for logs.
	var onLoading func(bool)
	if tty {
		onLoading = c.indicator(false, true).SetLoading
	}

	cfg := terminal.REPLConfig{Async: tty}
	if tty {
		cfg.Greeting = "Enter a chemical name or formula. Type exit to quit."
	}

	repl := terminal.NewREPL(
		c.app.Logger,
		c.app.Translator,
		terminal.NewDriver(c.in, c.out),
		r,
		translate.NewSession(onLoading),
		cfg,
	)
	return repl.Run(cmd.Context())
}
