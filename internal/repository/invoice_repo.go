package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"invoiceflow/internal/kvstore"
	"invoiceflow/internal/logger"
	"invoiceflow/internal/model"
)

var (
	// ErrInvoiceNotFound is returned when no invoice is stored under an id.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceCorrupt is returned when the stored value is not an invoice.
	ErrInvoiceCorrupt = errors.New("invoice record is corrupt")
)

type InvoiceRepository interface {
	Get(ctx context.Context, id string) (*model.Invoice, error)
	Save(ctx context.Context, invoice *model.Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Invoice, error)
}

type invoiceRepository struct {
	store kvstore.Store
}

func NewInvoiceRepository(store kvstore.Store) InvoiceRepository {
	return &invoiceRepository{store: store}
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*model.Invoice, error) {
	if !IsInvoiceKey(id) {
		return nil, ErrInvoiceNotFound
	}

	raw, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	var invoice model.Invoice
	if err := json.Unmarshal(raw, &invoice); err != nil {
		return nil, fmt.Errorf("%w: decode invoice %s: %v", ErrInvoiceCorrupt, id, err)
	}
	return &invoice, nil
}

func (r *invoiceRepository) Save(ctx context.Context, invoice *model.Invoice) error {
	if !IsInvoiceKey(invoice.ID) {
		return fmt.Errorf("invalid invoice key %q", invoice.ID)
	}
	raw, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("encode invoice %s: %w", invoice.ID, err)
	}
	return r.store.Set(ctx, invoice.ID, raw)
}

// Delete removes the invoice. Ids outside the invoice namespace are ignored
// so a crafted id can never remove another kind of record.
func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	if !IsInvoiceKey(id) {
		return nil
	}
	return r.store.Delete(ctx, id)
}

// List returns every stored invoice in store order. Records that fail to
// decode are skipped and logged.
func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	values, err := r.store.GetByPrefix(ctx, InvoicePrefix)
	if err != nil {
		return nil, err
	}

	invoices := make([]model.Invoice, 0, len(values))
	for _, raw := range values {
		var invoice model.Invoice
		if err := json.Unmarshal(raw, &invoice); err != nil {
			log := logger.WithComponent("repository")
			log.Warn().Err(err).Msg("skipping undecodable invoice record")
			continue
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}
