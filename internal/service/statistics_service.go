package service

import (
	"context"
	"fmt"
	"time"

	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"

	"github.com/shopspring/decimal"
)

// StatsRange bounds statistics by invoice creation time. Nil ends are open.
type StatsRange struct {
	Start *time.Time
	End   *time.Time
}

func (r StatsRange) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

type StatisticsService interface {
	GetStatistics(ctx context.Context, rng StatsRange) (model.Statistics, error)
}

type statisticsService struct {
	invoiceRepo repository.InvoiceRepository
}

func NewStatisticsService(invoiceRepo repository.InvoiceRepository) StatisticsService {
	return &statisticsService{invoiceRepo: invoiceRepo}
}

// GetStatistics counts invoices per status and sums their money within rng
func (s *statisticsService) GetStatistics(ctx context.Context, rng StatsRange) (model.Statistics, error) {
	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		return model.Statistics{}, fmt.Errorf("%w: end date before start date", model.ErrValidation)
	}

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("failed to fetch invoices: %w", err)
	}

	stats := model.Statistics{
		StatusCounts:       make(map[model.Status]int, len(model.Statuses)),
		TimeRangeStartDate: rng.Start,
		TimeRangeEndDate:   rng.End,
	}
	for _, st := range model.Statuses {
		stats.StatusCounts[st] = 0
	}

	subtotal, vat, total, payment := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		if !rng.contains(inv.CreatedAt) {
			continue
		}
		stats.TotalInvoices++
		stats.StatusCounts[inv.Status]++
		subtotal = subtotal.Add(decimal.NewFromFloat(inv.Subtotal))
		vat = vat.Add(decimal.NewFromFloat(inv.VatTotal))
		total = total.Add(decimal.NewFromFloat(inv.Total))
		payment = payment.Add(decimal.NewFromFloat(inv.PaymentTotal))
	}

	stats.Subtotal = subtotal.Round(2).InexactFloat64()
	stats.VatTotal = vat.Round(2).InexactFloat64()
	stats.Total = total.Round(2).InexactFloat64()
	stats.PaymentTotal = payment.Round(2).InexactFloat64()
	return stats, nil
}
