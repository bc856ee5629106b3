package service

import (
	"context"
	"fmt"

	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"
	"invoiceflow/pkg/pagination"
)

type AuditService interface {
	GetAuditLogs(ctx context.Context, invoiceID string, page pagination.Params) ([]model.AuditEntry, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns one page of entries, newest first, and the total
// number of entries matching invoiceID (all invoices when empty).
func (s *auditService) GetAuditLogs(ctx context.Context, invoiceID string, page pagination.Params) ([]model.AuditEntry, int64, error) {
	entries, err := s.auditRepo.List(ctx, invoiceID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	total := int64(len(entries))
	start, end := page.Bounds(len(entries))
	return entries[start:end], total, nil
}
