package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/chemtrans/internal/app"
	"github.com/heartmarshall/chemtrans/internal/config"
)

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the build version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.out, "chemtrans", app.BuildVersion())
			return err
		},
	}
}

func newEnvCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "env",
		Short:       "List configuration environment variables and defaults",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.out, config.Usage())
			return err
		},
	}
}
