package model

import (
	"time"
)

// Statistics aggregates invoices created within a time range
type Statistics struct {
	TotalInvoices      int            `json:"totalInvoices"`
	StatusCounts       map[Status]int `json:"statusCounts"`
	Subtotal           float64        `json:"subtotal"`
	VatTotal           float64        `json:"vatTotal"`
	Total              float64        `json:"total"`
	PaymentTotal       float64        `json:"paymentTotal"`
	TimeRangeStartDate *time.Time     `json:"timeRangeStartDate,omitempty"`
	TimeRangeEndDate   *time.Time     `json:"timeRangeEndDate,omitempty"`
}
