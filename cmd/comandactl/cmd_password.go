package main

import (
	"fmt"

	"comanda/config"
	"comanda/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// comandactl hash-password <password>
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash of a password, e.g. for the superadmin setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		hash, err := auth.NewBcryptHasher(cfg).Hash(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return errors.WithStack(err)
	},
}
