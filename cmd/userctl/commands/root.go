package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dbfs "github.com/mindgrove/cortex/db"
	"github.com/mindgrove/cortex/internal/config"
	"github.com/mindgrove/cortex/internal/db"
	"github.com/mindgrove/cortex/internal/repository/sqlite"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "userctl",
	Short: "Admin credential bootstrap for the cortex content API",
	Long: `userctl provisions admin credentials directly against the database,
outside the request-serving runtime. It is meant for one-shot manual use:

  userctl create <email> <password> [name]
  userctl reset-password <email> <password>`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML file")
}

// openRepo opens the store the same way the server does and hands back a
// repository plus a release func.
func openRepo(ctx context.Context) (*sqlite.Repo, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}

	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("db migrate error: %w", err)
	}

	return sqlite.New(database, nil), func() { database.Close() }, nil
}
