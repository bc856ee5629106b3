package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"invoiceflow/internal/logger"
	"invoiceflow/internal/metrics"
	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"
	"invoiceflow/internal/workflow"
)

// --- DTOs ---

type InvoiceFilter struct {
	Status model.Status // empty for all
}

// TransitionRequest moves an invoice to an explicit status.
type TransitionRequest struct {
	Status model.Status `json:"status"`
	Actor  string       `json:"actor"`
}

// ActionRequest names the actor of a send/advance/approve action.
type ActionRequest struct {
	Actor string `json:"actor"`
}

// Publisher receives change events after a successful write.
type Publisher interface {
	Publish(event model.Event)
}

// --- Interface ---

type InvoiceService interface {
	CreateInvoice(ctx context.Context, in model.CreateInput) (*model.Invoice, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, patch model.InvoicePatch) (*model.Invoice, error)
	TransitionInvoice(ctx context.Context, id string, req TransitionRequest) (*model.Invoice, error)
	ApplyAction(ctx context.Context, id, action string, req ActionRequest) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	auditRepo   repository.AuditRepository
	publisher   Publisher
	strict      bool
	now         func() time.Time
}

// NewInvoiceService wires the invoice workflow. publisher may be nil. With
// strict set, status changes must be the single forward step.
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	auditRepo repository.AuditRepository,
	publisher Publisher,
	strict bool,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
		strict:      strict,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// --- Implementation ---

func (s *invoiceService) CreateInvoice(ctx context.Context, in model.CreateInput) (*model.Invoice, error) {
	now := s.now()
	invoice, err := model.NewInvoice(repository.NewInvoiceKey(now), in, now)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, &invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.audit(ctx, model.AuditEntry{
		Action:    model.ActionCreateInvoice,
		InvoiceID: invoice.ID,
		InvoiceNo: invoice.InvoiceNo,
		Actor:     invoice.Creator,
		ToStatus:  invoice.Status,
		CreatedAt: now,
	}, nil)
	s.publish(model.EventInvoiceCreated, invoice.ID, &invoice, now)
	return &invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter InvoiceFilter) ([]model.Invoice, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", model.ErrValidation, filter.Status)
	}

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	if filter.Status == "" {
		return invoices, nil
	}

	filtered := invoices[:0]
	for _, inv := range invoices {
		if inv.Status == filter.Status {
			filtered = append(filtered, inv)
		}
	}
	return filtered, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", id, err)
	}
	return invoice, nil
}

// UpdateInvoice merges the patch into the stored record. A status in the
// patch is recorded without audit stamps, or checked first in strict mode.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, patch model.InvoicePatch) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", id, err)
	}

	from := invoice.Status
	if s.strict && patch.Status != nil && patch.Status.Valid() {
		if err := workflow.Validate(from, *patch.Status); err != nil {
			return nil, err
		}
	}

	now := s.now()
	if err := invoice.ApplyPatch(patch, now); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	entry := model.AuditEntry{
		Action:    model.ActionUpdateInvoice,
		InvoiceID: invoice.ID,
		InvoiceNo: invoice.InvoiceNo,
		CreatedAt: now,
	}
	if invoice.Status != from {
		entry.FromStatus, entry.ToStatus = from, invoice.Status
		metrics.TransitionsTotal.WithLabelValues(string(from), string(invoice.Status)).Inc()
	}
	s.audit(ctx, entry, patch)
	s.publish(model.EventInvoiceUpdated, invoice.ID, invoice, now)
	return invoice, nil
}

func (s *invoiceService) TransitionInvoice(ctx context.Context, id string, req TransitionRequest) (*model.Invoice, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", workflow.ErrUnknownStatus, req.Status)
	}

	invoice, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", id, err)
	}
	return s.transition(ctx, invoice, req.Status, req.Actor)
}

func (s *invoiceService) ApplyAction(ctx context.Context, id, action string, req ActionRequest) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice %s: %w", id, err)
	}

	target, err := workflow.Resolve(action, invoice.Status)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, invoice, target, req.Actor)
}

func (s *invoiceService) transition(ctx context.Context, invoice *model.Invoice, target model.Status, actor string) (*model.Invoice, error) {
	from := invoice.Status
	if s.strict {
		if err := workflow.Validate(from, target); err != nil {
			return nil, err
		}
	}

	now := s.now()
	updated, err := workflow.Transition(*invoice, target, actor, now)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save transition: %w", err)
	}
	metrics.TransitionsTotal.WithLabelValues(string(from), string(target)).Inc()

	s.audit(ctx, model.AuditEntry{
		Action:     model.ActionTransitionInvoice,
		InvoiceID:  updated.ID,
		InvoiceNo:  updated.InvoiceNo,
		Actor:      actor,
		FromStatus: from,
		ToStatus:   target,
		CreatedAt:  now,
	}, nil)
	s.publish(model.EventInvoiceStatusChanged, updated.ID, &updated, now)
	return &updated, nil
}

// DeleteInvoice is idempotent: deleting a missing id succeeds.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	// The pre-read only feeds the audit entry; an unreadable record is
	// still removed.
	existing, err := s.invoiceRepo.Get(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrInvoiceNotFound):
	case errors.Is(err, repository.ErrInvoiceCorrupt):
		log := logger.WithComponent("service")
		log.Warn().Err(err).Str("invoice_id", id).Msg("deleting undecodable invoice record")
	default:
		return fmt.Errorf("failed to load invoice %s: %w", id, err)
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	if existing == nil {
		return nil
	}

	now := s.now()
	s.audit(ctx, model.AuditEntry{
		Action:     model.ActionDeleteInvoice,
		InvoiceID:  id,
		InvoiceNo:  existing.InvoiceNo,
		FromStatus: existing.Status,
		CreatedAt:  now,
	}, nil)
	s.publish(model.EventInvoiceDeleted, id, nil, now)
	return nil
}

// --- Helpers ---

// audit writes entry, attaching details as JSON when given. Failures are
// logged and never fail the caller.
func (s *invoiceService) audit(ctx context.Context, entry model.AuditEntry, details any) {
	if s.auditRepo == nil {
		return
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = string(raw)
		}
	}
	if err := s.auditRepo.Log(ctx, &entry); err != nil {
		metrics.AuditFailures.Inc()
		log := logger.WithComponent("service")
		log.Warn().Err(err).
			Str("action", entry.Action).
			Str("invoice_id", entry.InvoiceID).
			Msg("failed to write audit entry")
	}
}

func (s *invoiceService) publish(eventType, id string, invoice *model.Invoice, at time.Time) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(model.Event{Type: eventType, InvoiceID: id, Invoice: invoice, At: at})
}
