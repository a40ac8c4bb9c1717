package commands

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var resetCmd = &cobra.Command{
	Use:   "reset-password <email> <password>",
	Short: "Replace the password hash for an existing credential record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password := args[0], args[1]

		ctx := cmd.Context()
		repo, release, err := openRepo(ctx)
		if err != nil {
			return err
		}
		defer release()

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash error: %w", err)
		}

		if err := repo.UpdatePassword(ctx, email, string(hash)); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("user %s not found", email)
			}

			return fmt.Errorf("reset error: %w", err)
		}

		fmt.Printf("Password for %s updated.\n", email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
