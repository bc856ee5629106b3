package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch_MergesAndRecomputes(t *testing.T) {
	inv, err := NewInvoice("invoice:1:abc", acmeInput(), t0)
	require.NoError(t, err)

	var p InvoicePatch
	require.NoError(t, DecodeStrict([]byte(`{
		"company": "Acme Logistics",
		"items": [{"description": "a", "price": 10}, {"description": "b", "price": 5.55, "vat": 99, "total": 1}],
		"paymentAmount": 500,
		"subtotal": 12345
	}`), &p))

	t1 := t0.Add(time.Hour)
	require.NoError(t, inv.ApplyPatch(p, t1))

	assert.Equal(t, "invoice:1:abc", inv.ID)
	assert.Equal(t, t0, inv.CreatedAt)
	assert.Equal(t, t1, inv.UpdatedAt)
	assert.Equal(t, "Acme Logistics", inv.Company)
	assert.Equal(t, "INV-001", inv.InvoiceNo)
	assert.Equal(t, InvoiceItem{Description: "b", Price: 5.55, VAT: 1.11, Total: 6.66}, inv.Items[1])
	assert.Equal(t, 15.55, inv.Subtotal)
	assert.Equal(t, 3.11, inv.VatTotal)
	assert.Equal(t, 18.66, inv.Total)
	assert.Equal(t, 500.0, inv.PaymentTotal)
}

func TestApplyPatch_RawStatusDoesNotStamp(t *testing.T) {
	inv, err := NewInvoice("id", acmeInput(), t0)
	require.NoError(t, err)

	completed := StatusCompleted
	require.NoError(t, inv.ApplyPatch(InvoicePatch{Status: &completed}, t0.Add(time.Minute)))

	assert.Equal(t, StatusCompleted, inv.Status)
	assert.Nil(t, inv.CompletedDate)
	assert.Empty(t, inv.Completer)
}

func TestApplyPatch_RepeatedEditsDoNotDrift(t *testing.T) {
	inv, err := NewInvoice("id", acmeInput(), t0)
	require.NoError(t, err)

	items := []InvoiceItem{{Price: 0.1}, {Price: 0.2}}
	for i := 0; i < 50; i++ {
		p := InvoicePatch{Items: &items}
		require.NoError(t, inv.ApplyPatch(p, t0))
		items = inv.Items
	}

	assert.Equal(t, 0.3, inv.Subtotal)
	assert.Equal(t, 0.06, inv.VatTotal)
	assert.Equal(t, 0.36, inv.Total)
}

func TestApplyPatch_Invalid(t *testing.T) {
	inv, err := NewInvoice("id", acmeInput(), t0)
	require.NoError(t, err)
	before := inv

	blank := ""
	empty := []InvoiceItem{}
	bad := Status("void")
	neg := -1.0

	for name, p := range map[string]InvoicePatch{
		"blank company":    {Company: &blank},
		"empty items":      {Items: &empty},
		"unknown status":   {Status: &bad},
		"negative payment": {PaymentAmount: &neg},
	} {
		t.Run(name, func(t *testing.T) {
			err := inv.ApplyPatch(p, t0.Add(time.Hour))
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, before, inv)
		})
	}
}

func TestApplyPatch_EchoedRecordKeys(t *testing.T) {
	inv, err := NewInvoice("invoice:1:abc", acmeInput(), t0)
	require.NoError(t, err)
	later := t0.Add(time.Hour)

	var p InvoicePatch
	require.NoError(t, DecodeStrict([]byte(`{
		"id": "invoice:1:abc",
		"createdAt": "1999-01-01T00:00:00Z",
		"updatedAt": "not a time",
		"company": "Acme Logistics"
	}`), &p))
	require.NoError(t, inv.ApplyPatch(p, later))

	assert.Equal(t, "invoice:1:abc", inv.ID)
	assert.Equal(t, t0, inv.CreatedAt)
	assert.Equal(t, later, inv.UpdatedAt)
	assert.Equal(t, "Acme Logistics", inv.Company)

	before := inv
	other := "invoice:2:xyz"
	err = inv.ApplyPatch(InvoicePatch{recordKeys: recordKeys{ID: &other}}, later.Add(time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, inv)
}

func TestDecodeStrict_RejectsUnknownKeys(t *testing.T) {
	var p InvoicePatch
	err := DecodeStrict([]byte(`{"company":"x","sender":"Mallory"}`), &p)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), `unknown field "sender"`)

	err = DecodeStrict([]byte(`{"company":`), &p)
	assert.ErrorIs(t, err, ErrValidation)

	err = DecodeStrict([]byte(`{} {}`), &p)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoicePatch_Empty(t *testing.T) {
	assert.True(t, InvoicePatch{}.Empty())
	name := "x"
	assert.False(t, InvoicePatch{Contact: &name}.Empty())
}
