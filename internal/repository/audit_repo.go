package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"invoiceflow/internal/kvstore"
	"invoiceflow/internal/model"
)

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditEntry) error
	// List returns entries newest first, optionally limited to one invoice.
	List(ctx context.Context, invoiceID string) ([]model.AuditEntry, error)
}

type auditRepository struct {
	store kvstore.Store
}

func NewAuditRepository(store kvstore.Store) AuditRepository {
	return &auditRepository{store: store}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = NewAuditKey(entry.CreatedAt)
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}
	return r.store.Set(ctx, entry.ID, raw)
}

func (r *auditRepository) List(ctx context.Context, invoiceID string) ([]model.AuditEntry, error) {
	values, err := r.store.GetByPrefix(ctx, AuditPrefix)
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, 0, len(values))
	for _, raw := range values {
		var e model.AuditEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		if invoiceID != "" && e.InvoiceID != invoiceID {
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
