package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindgrove/cortex/pkg/models"
)

var createCmd = &cobra.Command{
	Use:   "create <email> <password> [name]",
	Short: "Create a new admin credential record",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password := args[0], args[1]
		name := ""
		if len(args) == 3 {
			name = args[2]
		}

		ctx := cmd.Context()
		repo, release, err := openRepo(ctx)
		if err != nil {
			return err
		}
		defer release()

		existing, err := repo.GetUserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("lookup error: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("user %s already exists", email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash error: %w", err)
		}

		user := &models.User{
			Email:        email,
			Name:         name,
			Role:         "admin",
			PasswordHash: string(hash),
		}
		id, err := repo.CreateUser(ctx, user)
		if err != nil {
			return fmt.Errorf("create error: %w", err)
		}

		fmt.Printf("User %s created (id %d).\n", email, id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
