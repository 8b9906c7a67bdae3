package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chemtrans/internal/service/translate"
)

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name or formula...>",
		Short: "Look up one compound and exit",
		Long: `Looks up a single chemical name or formula. Arguments are joined with
spaces, so "lookup sodium chloride" needs no quoting.

Exits 0 when a compound is found and 1 otherwise.`,
		Example: `  chemtrans lookup H2O
  chemtrans lookup sodium chloride -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.renderer()
			if err != nil {
				return err
			}

			var onLoading func(bool)
			if ind := c.indicator(true, false); ind != nil {
				onLoading = ind.SetLoading
			}

			view := c.app.Translator.Translate(cmd.Context(), translate.NewSession(onLoading), strings.Join(args, " "))
			if err := r.Render(view); err != nil {
				return err
			}
			if !view.Found() {
				return errNoResult
			}
			return nil
		},
	}
}
