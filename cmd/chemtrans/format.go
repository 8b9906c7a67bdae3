package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chemtrans/internal/domain"
)

func newFormatCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "format <formula...>",
		Short: "Print a formula with subscript digits",
		Long: `Rewrites every digit as its Unicode subscript. A backslash keeps the
following digit as is: Fe\2O3 prints Fe2O₃.`,
		Example:     `  chemtrans format C6H12O6`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, domain.FormatWithSubscript(strings.Join(args, " ")))
			return err
		},
	}
}

func newClassifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "classify <text...>",
		Short:       `Print whether input is looked up as a "formula" or a "name"`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, domain.ClassifyInput(strings.Join(args, " ")))
			return err
		},
	}
}
