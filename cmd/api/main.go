package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"invoiceflow/internal/config"
	"invoiceflow/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// @title           Invoice Workflow API
// @version         1.0
// @description     Tracks invoices through draft, sent, in_process, completed and logged with an audit trail of who moved each step.
// @host            localhost:8080
// @BasePath        /api
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "invoiceflow",
		Short: "Invoice workflow tracker",
		Long: `invoiceflow tracks invoices through draft, sent, in_process,
completed and logged, recording who moved each step and when.

Running without a subcommand starts the HTTP server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newListCmd())
	return root
}

// loadConfig reads env config, applies flag overrides and sets up logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = f.Value.String()
	}
	if f := cmd.Flags().Lookup("store"); f != nil && f.Changed {
		cfg.StoreDriver = strings.ToLower(f.Value.String())
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cfg.StrictTransitions = f.Value.String() == "true"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}
