package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// InvoicePatch is a partial update. Nil fields are left untouched.
//
// Status set here is written as-is: no audit stamp is applied. Stamped
// status changes go through the workflow package instead.
type InvoicePatch struct {
	SenderName            *string `json:"senderName,omitempty"`
	Company               *string `json:"company,omitempty"`
	InvoiceNo             *string `json:"invoiceNo,omitempty"`
	Date                  *string `json:"date,omitempty"`
	InvoiceDescription    *string `json:"invoiceDescription,omitempty"`
	AdditionalDescription *string `json:"additionalDescription,omitempty"`
	LoadingCompany        *string `json:"loadingCompany,omitempty"`
	LoadingLocation       *string `json:"loadingLocation,omitempty"`
	ShippingCompany       *string `json:"shippingCompany,omitempty"`
	ShippingLocation      *string `json:"shippingLocation,omitempty"`
	Operator              *string `json:"operator,omitempty"`
	SalesRepresentative   *string `json:"salesRepresentative,omitempty"`
	Supplier              *string `json:"supplier,omitempty"`
	LicensePlate          *string `json:"licensePlate,omitempty"`
	Contact               *string `json:"contact,omitempty"`
	Delivery              *string `json:"delivery,omitempty"`
	PaymentDate           *string `json:"paymentDate,omitempty"`
	Payment               *string `json:"payment,omitempty"`

	InvoiceDetailsAmount *float64       `json:"invoiceDetailsAmount,omitempty"`
	PaymentAmount        *float64       `json:"paymentAmount,omitempty"`
	Items                *[]InvoiceItem `json:"items,omitempty"`

	Status *Status `json:"status,omitempty"`

	recordKeys
	derivedAmounts
}

// recordKeys are read-only fields a client echoes back from a fetched
// invoice. They are accepted and never applied; a differing id is rejected.
type recordKeys struct {
	ID        *string          `json:"id,omitempty"`
	CreatedAt *json.RawMessage `json:"createdAt,omitempty"`
	UpdatedAt *json.RawMessage `json:"updatedAt,omitempty"`
}

// DecodeStrict unmarshals data into v, rejecting keys v does not declare.
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", ErrValidation)
	}
	return nil
}

// Empty reports whether the patch changes nothing.
func (p InvoicePatch) Empty() bool {
	return p == InvoicePatch{}
}

// Validate checks the fields present in the patch.
func (p InvoicePatch) Validate() error {
	var problems []string
	for field, v := range map[string]*string{"company": p.Company, "invoiceNo": p.InvoiceNo, "date": p.Date} {
		if v != nil && strings.TrimSpace(*v) == "" {
			problems = append(problems, field+" must not be blank")
		}
	}
	if p.Items != nil {
		problems = append(problems, checkItems(*p.Items)...)
	}
	if p.InvoiceDetailsAmount != nil {
		problems = append(problems, checkAmount("invoiceDetailsAmount", *p.InvoiceDetailsAmount)...)
	}
	if p.PaymentAmount != nil {
		problems = append(problems, checkAmount("paymentAmount", *p.PaymentAmount)...)
	}
	if p.Status != nil && !p.Status.Valid() {
		problems = append(problems, fmt.Sprintf("unknown status %q", *p.Status))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// ApplyPatch merges p into inv, recomputes money and refreshes UpdatedAt.
// ID, CreatedAt and the audit trail are never touched.
func (inv *Invoice) ApplyPatch(p InvoicePatch, now time.Time) error {
	if p.ID != nil && *p.ID != inv.ID {
		return fmt.Errorf("%w: id %q does not match invoice %q", ErrValidation, *p.ID, inv.ID)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	setString(&inv.SenderName, p.SenderName)
	setString(&inv.Company, p.Company)
	setString(&inv.InvoiceNo, p.InvoiceNo)
	setString(&inv.Date, p.Date)
	setString(&inv.InvoiceDescription, p.InvoiceDescription)
	setString(&inv.AdditionalDescription, p.AdditionalDescription)
	setString(&inv.LoadingCompany, p.LoadingCompany)
	setString(&inv.LoadingLocation, p.LoadingLocation)
	setString(&inv.ShippingCompany, p.ShippingCompany)
	setString(&inv.ShippingLocation, p.ShippingLocation)
	setString(&inv.Operator, p.Operator)
	setString(&inv.SalesRepresentative, p.SalesRepresentative)
	setString(&inv.Supplier, p.Supplier)
	setString(&inv.LicensePlate, p.LicensePlate)
	setString(&inv.Contact, p.Contact)
	setString(&inv.Delivery, p.Delivery)
	setString(&inv.PaymentDate, p.PaymentDate)
	setString(&inv.Payment, p.Payment)

	if p.InvoiceDetailsAmount != nil {
		inv.InvoiceDetailsAmount = *p.InvoiceDetailsAmount
	}
	if p.PaymentAmount != nil {
		inv.PaymentAmount = *p.PaymentAmount
	}
	if p.Items != nil {
		inv.Items = append([]InvoiceItem(nil), (*p.Items)...)
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}

	inv.Recalculate()
	inv.UpdatedAt = now
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
