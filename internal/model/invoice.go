package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"invoiceflow/internal/money"
)

// Status enum constants, in workflow order.
const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusInProcess Status = "in_process"
	StatusCompleted Status = "completed"
	StatusLogged    Status = "logged"
)

// ErrValidation marks input that cannot form a valid invoice.
var ErrValidation = errors.New("invalid invoice")

// Status is the position of an invoice in the approval workflow.
type Status string

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusDraft, StatusSent, StatusInProcess, StatusCompleted, StatusLogged}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Rank is the zero-based position of s in the workflow, or -1.
func (s Status) Rank() int {
	for i, known := range Statuses {
		if s == known {
			return i
		}
	}
	return -1
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
	}
	return s, nil
}

// InvoiceItem is one priced line. VAT and Total are always derived from Price.
type InvoiceItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	VAT         float64 `json:"vat"`
	Total       float64 `json:"total"`
}

// Invoice is the stored record. ID doubles as the storage key.
type Invoice struct {
	ID string `json:"id"`

	SenderName            string `json:"senderName"`
	Company               string `json:"company"`
	InvoiceNo             string `json:"invoiceNo"`
	Date                  string `json:"date"`
	InvoiceDescription    string `json:"invoiceDescription"`
	AdditionalDescription string `json:"additionalDescription"`
	LoadingCompany        string `json:"loadingCompany"`
	LoadingLocation       string `json:"loadingLocation"`
	ShippingCompany       string `json:"shippingCompany"`
	ShippingLocation      string `json:"shippingLocation"`
	Operator              string `json:"operator"`
	SalesRepresentative   string `json:"salesRepresentative"`
	Supplier              string `json:"supplier"`
	LicensePlate          string `json:"licensePlate"`
	Contact               string `json:"contact"`
	Delivery              string `json:"delivery"`
	PaymentDate           string `json:"paymentDate"`
	Payment               string `json:"payment"`

	InvoiceDetailsAmount float64 `json:"invoiceDetailsAmount"`
	InvoiceDetailsVat    float64 `json:"invoiceDetailsVat"`
	InvoiceDetailsTotal  float64 `json:"invoiceDetailsTotal"`

	Items    []InvoiceItem `json:"items"`
	Subtotal float64       `json:"subtotal"`
	VatTotal float64       `json:"vatTotal"`
	Total    float64       `json:"total"`

	PaymentAmount   float64 `json:"paymentAmount"`
	PaymentVat      float64 `json:"paymentVat"`
	PaymentTevrikat float64 `json:"paymentTevrikat"`
	PaymentTotal    float64 `json:"paymentTotal"`

	Status Status `json:"status"`

	// Audit trail: each actor/date pair is written once, on first entry
	// into the matching status.
	Creator       string     `json:"creator,omitempty"`
	Sender        string     `json:"sender,omitempty"`
	Processor     string     `json:"processor,omitempty"`
	Completer     string     `json:"completer,omitempty"`
	Logger        string     `json:"logger,omitempty"`
	SentDate      *time.Time `json:"sentDate,omitempty"`
	ProcessDate   *time.Time `json:"processDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	ApprovedDate  *time.Time `json:"approvedDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// derivedAmounts are the computed money keys a client may echo back.
// They are accepted on input and always recomputed.
type derivedAmounts struct {
	InvoiceDetailsVat   *float64 `json:"invoiceDetailsVat,omitempty"`
	InvoiceDetailsTotal *float64 `json:"invoiceDetailsTotal,omitempty"`
	Subtotal            *float64 `json:"subtotal,omitempty"`
	VatTotal            *float64 `json:"vatTotal,omitempty"`
	Total               *float64 `json:"total,omitempty"`
	PaymentVat          *float64 `json:"paymentVat,omitempty"`
	PaymentTevrikat     *float64 `json:"paymentTevrikat,omitempty"`
	PaymentTotal        *float64 `json:"paymentTotal,omitempty"`
}

// CreateInput holds the caller-supplied fields of a new invoice.
type CreateInput struct {
	SenderName            string `json:"senderName"`
	Company               string `json:"company"`
	InvoiceNo             string `json:"invoiceNo"`
	Date                  string `json:"date"`
	InvoiceDescription    string `json:"invoiceDescription"`
	AdditionalDescription string `json:"additionalDescription"`
	LoadingCompany        string `json:"loadingCompany"`
	LoadingLocation       string `json:"loadingLocation"`
	ShippingCompany       string `json:"shippingCompany"`
	ShippingLocation      string `json:"shippingLocation"`
	Operator              string `json:"operator"`
	SalesRepresentative   string `json:"salesRepresentative"`
	Supplier              string `json:"supplier"`
	LicensePlate          string `json:"licensePlate"`
	Contact               string `json:"contact"`
	Delivery              string `json:"delivery"`
	PaymentDate           string `json:"paymentDate"`
	Payment               string `json:"payment"`

	InvoiceDetailsAmount float64       `json:"invoiceDetailsAmount"`
	PaymentAmount        float64       `json:"paymentAmount"`
	Items                []InvoiceItem `json:"items"`

	// Status defaults to draft when empty.
	Status Status `json:"status"`
	// Creator is the acting name; SenderName is used when it is empty.
	Creator string `json:"creator"`

	derivedAmounts
}

// Validate checks required fields and amount ranges.
func (in CreateInput) Validate() error {
	var problems []string
	if strings.TrimSpace(in.Company) == "" {
		problems = append(problems, "company is required")
	}
	if strings.TrimSpace(in.InvoiceNo) == "" {
		problems = append(problems, "invoiceNo is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		problems = append(problems, "date is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		problems = append(problems, fmt.Sprintf("unknown status %q", in.Status))
	}
	// A non-draft start stamps that status, which needs a name.
	if in.Status != "" && in.Status != StatusDraft && in.Actor() == "" {
		problems = append(problems, fmt.Sprintf("creator or senderName is required to create a %s invoice", in.Status))
	}
	problems = append(problems, checkItems(in.Items)...)
	problems = append(problems, checkAmount("invoiceDetailsAmount", in.InvoiceDetailsAmount)...)
	problems = append(problems, checkAmount("paymentAmount", in.PaymentAmount)...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// Actor returns the name credited as the invoice creator.
func (in CreateInput) Actor() string {
	if name := strings.TrimSpace(in.Creator); name != "" {
		return name
	}
	return strings.TrimSpace(in.SenderName)
}

// NewInvoice builds a draft invoice stamped with its creator. The id is
// assigned by the caller.
func NewInvoice(id string, in CreateInput, now time.Time) (Invoice, error) {
	if err := in.Validate(); err != nil {
		return Invoice{}, err
	}

	inv := Invoice{
		ID:                    id,
		SenderName:            in.SenderName,
		Company:               in.Company,
		InvoiceNo:             in.InvoiceNo,
		Date:                  in.Date,
		InvoiceDescription:    in.InvoiceDescription,
		AdditionalDescription: in.AdditionalDescription,
		LoadingCompany:        in.LoadingCompany,
		LoadingLocation:       in.LoadingLocation,
		ShippingCompany:       in.ShippingCompany,
		ShippingLocation:      in.ShippingLocation,
		Operator:              in.Operator,
		SalesRepresentative:   in.SalesRepresentative,
		Supplier:              in.Supplier,
		LicensePlate:          in.LicensePlate,
		Contact:               in.Contact,
		Delivery:              in.Delivery,
		PaymentDate:           in.PaymentDate,
		Payment:               in.Payment,
		InvoiceDetailsAmount:  in.InvoiceDetailsAmount,
		PaymentAmount:         in.PaymentAmount,
		Items:                 append([]InvoiceItem(nil), in.Items...),
		Status:                StatusDraft,
		Creator:               in.Actor(),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	inv.Recalculate()

	if in.Status != "" && in.Status != StatusDraft {
		inv = ApplyStamp(inv, in.Status, inv.Creator, now)
	}
	return inv, nil
}

// Recalculate derives every computed money field from its source input.
func (inv *Invoice) Recalculate() {
	lines := make([]money.Item, 0, len(inv.Items))
	for i := range inv.Items {
		line := money.Line(inv.Items[i].Price)
		inv.Items[i].Price = line.Price
		inv.Items[i].VAT = line.VAT
		inv.Items[i].Total = line.Total
		lines = append(lines, line)
	}

	sum := money.Totals(lines)
	inv.Subtotal = sum.Subtotal
	inv.VatTotal = sum.VATTotal
	inv.Total = sum.Total

	details := money.Details(inv.InvoiceDetailsAmount)
	inv.InvoiceDetailsAmount = details.Amount
	inv.InvoiceDetailsVat = details.VAT
	inv.InvoiceDetailsTotal = details.Total

	pay := money.Payment(inv.PaymentAmount)
	inv.PaymentAmount = pay.Amount
	inv.PaymentVat = pay.VAT
	inv.PaymentTevrikat = pay.Tevrikat
	inv.PaymentTotal = pay.Total
}

// ApplyStamp returns inv moved to target. The actor/date pair matching
// target is filled only when it is still unset, so re-entering a status
// never rewrites earlier audit data. Draft has no stamp of its own.
func ApplyStamp(inv Invoice, target Status, actor string, now time.Time) Invoice {
	inv.Status = target

	var who *string
	var when **time.Time
	switch target {
	case StatusSent:
		who, when = &inv.Sender, &inv.SentDate
	case StatusInProcess:
		who, when = &inv.Processor, &inv.ProcessDate
	case StatusCompleted:
		who, when = &inv.Completer, &inv.CompletedDate
	case StatusLogged:
		who, when = &inv.Logger, &inv.ApprovedDate
	default:
		return inv
	}

	if *when == nil {
		stamped := now
		*when = &stamped
		*who = actor
	}
	return inv
}

func checkItems(items []InvoiceItem) []string {
	if len(items) == 0 {
		return []string{"at least one item is required"}
	}
	var problems []string
	for i, it := range items {
		problems = append(problems, checkAmount(fmt.Sprintf("items[%d].price", i), it.Price)...)
	}
	return problems
}

func checkAmount(field string, v float64) []string {
	if v < 0 {
		return []string{field + " must not be negative"}
	}
	return nil
}
