package model

import (
	"time"
)

const (
	ActionCreateInvoice     = "CREATE_INVOICE"
	ActionUpdateInvoice     = "UPDATE_INVOICE"
	ActionTransitionInvoice = "TRANSITION_INVOICE"
	ActionDeleteInvoice     = "DELETE_INVOICE"
)

// AuditEntry tracks Who, What, and When for every invoice mutation
type AuditEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	InvoiceID  string    `json:"invoiceId"`
	InvoiceNo  string    `json:"invoiceNo,omitempty"`
	Actor      string    `json:"actor,omitempty"`      // Empty for raw updates that name nobody
	FromStatus Status    `json:"fromStatus,omitempty"`
	ToStatus   Status    `json:"toStatus,omitempty"`
	Details    string    `json:"details,omitempty"` // Serialized JSON payload of the action
	CreatedAt  time.Time `json:"createdAt"`
}
