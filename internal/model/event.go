package model

import "time"

// Event types pushed to websocket subscribers
const (
	EventInvoiceCreated       = "invoice.created"
	EventInvoiceUpdated       = "invoice.updated"
	EventInvoiceStatusChanged = "invoice.status_changed"
	EventInvoiceDeleted       = "invoice.deleted"
)

// Event notifies subscribers that an invoice changed.
type Event struct {
	Type      string    `json:"type"`
	InvoiceID string    `json:"invoiceId"`
	Invoice   *Invoice  `json:"invoice,omitempty"` // Nil for deletions
	At        time.Time `json:"at"`
}
