package main

import (
	"encoding/json"
	"fmt"

	"invoiceflow/internal/database"
	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"
	"invoiceflow/internal/service"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored invoices as JSON",
		Example: `  invoiceflow list
  invoiceflow list --status sent --store sqlite`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().String("status", "", "Only invoices in this status")
	cmd.Flags().String("store", "", "Store driver: postgres, sqlite or badger (overrides STORE_DRIVER)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := database.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("store connection failed: %w", err)
	}
	defer store.Close()

	status, _ := cmd.Flags().GetString("status")
	svc := service.NewInvoiceService(repository.NewInvoiceRepository(store), nil, nil, false)
	invoices, err := svc.ListInvoices(cmd.Context(), service.InvoiceFilter{Status: model.Status(status)})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]model.Invoice{"invoices": invoices})
}
