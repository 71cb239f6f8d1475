package main

import (
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/qa_api/internal/config"
)

const (
	addrFlag        = "addr"
	databaseURLFlag = "database-url"
)

// newFlags returns a fresh flag set; each command registers its own.
func newFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		addrFlag: &cobraflags.StringFlag{
			Name:  addrFlag,
			Value: "",
			Usage: "Listen address (host:port); overrides SERVER_HOST and SERVER_PORT",
		},
		databaseURLFlag: &cobraflags.StringFlag{
			Name:  databaseURLFlag,
			Value: "",
			Usage: "Database URL (postgres://... or sqlite://path); overrides DATABASE_URL",
		},
	}
}

func newRootCommand() *cobra.Command {
	root := newServeCommand()
	root.Use = "qaapi"
	root.Short = "CRUD API over users, products, statuses and transactions for API test practice"
	root.SilenceUsage = true
	root.SilenceErrors = true

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	return root
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string) {
	cfg := config.Load()
	if dsn, _ := cmd.Flags().GetString(databaseURLFlag); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	addr := cfg.Addr()
	if a, _ := cmd.Flags().GetString(addrFlag); a != "" {
		addr = a
	}
	return cfg, addr
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Stderr.WriteString("qaapi: " + err.Error() + "\n")
		os.Exit(1)
	}
}
