package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invoiceflow/internal/kvstore"
	"invoiceflow/internal/middleware"
	"invoiceflow/internal/model"
	"invoiceflow/internal/repository"
	"invoiceflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acmeJSON = `{
	"company": "Acme",
	"invoiceNo": "INV-001",
	"date": "2024-01-01",
	"creator": "Alice",
	"items": [{"description": "Freight", "price": 100}]
}`

func setupRouter(t *testing.T, strict bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := kvstore.OpenBadger(kvstore.InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	invoiceRepo := repository.NewInvoiceRepository(store)
	auditRepo := repository.NewAuditRepository(store)

	r := gin.New()
	r.Use(middleware.Caller())
	api := r.Group("/api")
	NewSystemHandler(nil).RegisterRoutes(api)
	NewInvoiceHandler(service.NewInvoiceService(invoiceRepo, auditRepo, nil, strict)).RegisterRoutes(api)
	NewAuditHandler(service.NewAuditService(auditRepo)).RegisterRoutes(api)
	NewStatisticsHandler(service.NewStatisticsService(invoiceRepo)).RegisterRoutes(api)
	return r
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInvoice(t *testing.T, w *httptest.ResponseRecorder) model.Invoice {
	t.Helper()
	var body struct {
		Invoice model.Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Invoice
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, ok := body["error"].(string)
	require.True(t, ok, "missing error key in %s", w.Body.String())
	return msg
}

func createAcme(t *testing.T, r *gin.Engine) model.Invoice {
	t.Helper()
	w := do(r, http.MethodPost, "/api/invoices", acmeJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeInvoice(t, w)
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, false)
	w := do(r, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateAndGetInvoice(t *testing.T) {
	r := setupRouter(t, false)
	created := createAcme(t, r)

	assert.Equal(t, model.StatusDraft, created.Status)
	assert.Equal(t, "Alice", created.Creator)
	assert.Equal(t, 100.0, created.Subtotal)
	assert.Equal(t, 20.0, created.VatTotal)
	assert.Equal(t, 120.0, created.Total)

	w := do(r, http.MethodGet, "/api/invoices/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeInvoice(t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestCreateInvoice_BadInput(t *testing.T) {
	r := setupRouter(t, false)

	w := do(r, http.MethodPost, "/api/invoices", `{"company":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errorOf(t, w)

	w = do(r, http.MethodPost, "/api/invoices", `{"company":"Acme","invoiceNo":"1","date":"2024-01-01","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorOf(t, w), "item")
}

func TestCreateInvoice_IgnoresDerivedAmounts(t *testing.T) {
	r := setupRouter(t, false)
	body := `{"company":"Acme","invoiceNo":"1","date":"2024-01-01","paymentAmount":500,"paymentTotal":1,"total":9,
		"items":[{"description":"x","price":100,"vat":1,"total":1}]}`

	w := do(r, http.MethodPost, "/api/invoices", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	inv := decodeInvoice(t, w)
	assert.Equal(t, 120.0, inv.Total)
	assert.Equal(t, 500.0, inv.PaymentTotal)
	assert.Equal(t, 20.0, inv.Items[0].VAT)
}

func TestUpdateInvoice(t *testing.T) {
	r := setupRouter(t, false)
	created := createAcme(t, r)

	w := do(r, http.MethodPut, "/api/invoices/"+created.ID, `{"company":"Acme Logistics","total":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeInvoice(t, w)
	assert.Equal(t, "Acme Logistics", updated.Company)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 120.0, updated.Total)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateInvoice_AcceptsFetchedRecord(t *testing.T) {
	r := setupRouter(t, false)
	created := createAcme(t, r)

	body := fmt.Sprintf(`{"id":%q,"createdAt":"1999-01-01T00:00:00Z","updatedAt":"1999-01-01T00:00:00Z","contact":"Dana"}`, created.ID)
	w := do(r, http.MethodPut, "/api/invoices/"+created.ID, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decodeInvoice(t, w)
	assert.Equal(t, "Dana", updated.Contact)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateInvoice_Rejections(t *testing.T) {
	r := setupRouter(t, false)
	created := createAcme(t, r)

	tests := []struct {
		name string
		id   string
		body string
		code int
	}{
		{"missing invoice", "invoice:missing", `{"company":"X"}`, http.StatusNotFound},
		{"unknown key", created.ID, `{"colour":"red"}`, http.StatusBadRequest},
		{"id is immutable", created.ID, `{"id":"invoice:1:other"}`, http.StatusBadRequest},
		{"audit stamp", created.ID, `{"sender":"Mallory"}`, http.StatusBadRequest},
		{"blank company", created.ID, `{"company":"  "}`, http.StatusBadRequest},
		{"malformed", created.ID, `{`, http.StatusBadRequest},
		{"unknown status", created.ID, `{"status":"archived"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPut, "/api/invoices/"+tt.id, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			errorOf(t, w)
		})
	}
}

func TestWorkflowEndpoints(t *testing.T) {
	r := setupRouter(t, true)
	created := createAcme(t, r)
	base := "/api/invoices/" + created.ID

	w := do(r, http.MethodPost, base+"/advance", `{"actor":"Bob"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "Bob"}).SignedString([]byte("k"))
	require.NoError(t, err)
	w = do(r, http.MethodPost, base+"/send", "", "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bob", decodeInvoice(t, w).Sender)

	w = do(r, http.MethodPost, base+"/advance", `{"actor":"Carol"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.StatusInProcess, decodeInvoice(t, w).Status)

	w = do(r, http.MethodPost, base+"/status", `{"status":"logged","actor":"Erin"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, base+"/status", `{"status":"completed","actor":"Dave"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Dave", decodeInvoice(t, w).Completer)

	w = do(r, http.MethodPost, base+"/approve", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorOf(t, w), "actor")

	w = do(r, http.MethodPost, base+"/approve", `{"actor":"Erin"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	inv := decodeInvoice(t, w)
	assert.Equal(t, model.StatusLogged, inv.Status)
	assert.Equal(t, "Erin", inv.Logger)
	assert.NotNil(t, inv.ApprovedDate)

	w = do(r, http.MethodPost, base+"/status", `{"status":"archived","actor":"Erin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/invoices/invoice:missing/send", `{"actor":"Bob"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkflowEndpoints_ChunkedEmptyBody(t *testing.T) {
	r := setupRouter(t, false)
	created := createAcme(t, r)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "Bob"}).SignedString([]byte("k"))
	require.NoError(t, err)

	// A body of unknown length, as sent with chunked transfer encoding.
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/"+created.ID+"/send", io.NopCloser(strings.NewReader("")))
	require.EqualValues(t, -1, req.ContentLength)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bob", decodeInvoice(t, w).Sender)
}

func TestListAndDeleteInvoices(t *testing.T) {
	r := setupRouter(t, false)
	a := createAcme(t, r)
	b := createAcme(t, r)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/invoices/"+b.ID+"/send", `{"actor":"Bob"}`).Code)

	var list InvoiceListResponse
	w := do(r, http.MethodGet, "/api/invoices", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Invoices, 2)

	w = do(r, http.MethodGet, "/api/invoices?status=sent", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, b.ID, list.Invoices[0].ID)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/invoices?status=bogus", "").Code)

	w = do(r, http.MethodDelete, "/api/invoices/"+a.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/invoices/"+a.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/invoices/"+a.ID, "").Code)

	w = do(r, http.MethodGet, "/api/invoices", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, b.ID, list.Invoices[0].ID)
}

func TestAuditLogs(t *testing.T) {
	r := setupRouter(t, false)
	a := createAcme(t, r)
	createAcme(t, r)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/invoices/"+a.ID+"/send", `{"actor":"Bob"}`).Code)

	var logs AuditLogsResponse
	w := do(r, http.MethodGet, "/api/audit-logs?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.EqualValues(t, 3, logs.Total)
	assert.Len(t, logs.Logs, 2)
	assert.Equal(t, 1, logs.Page)
	assert.Equal(t, 2, logs.Limit)

	w = do(r, http.MethodGet, "/api/audit-logs?invoice_id="+a.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs.Logs, 2)
	assert.Equal(t, model.ActionTransitionInvoice, logs.Logs[0].Action)
	assert.Equal(t, "Bob", logs.Logs[0].Actor)
}

func TestStatistics(t *testing.T) {
	r := setupRouter(t, false)
	a := createAcme(t, r)
	createAcme(t, r)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/invoices/"+a.ID+"/send", `{"actor":"Bob"}`).Code)

	var stats model.Statistics
	w := do(r, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalInvoices)
	assert.Equal(t, 1, stats.StatusCounts[model.StatusDraft])
	assert.Equal(t, 1, stats.StatusCounts[model.StatusSent])
	assert.Equal(t, 0, stats.StatusCounts[model.StatusLogged])
	assert.Equal(t, 240.0, stats.Total)

	w = do(r, http.MethodGet, "/api/statistics?start_date=2999-01-01T00:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalInvoices)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/statistics?start_date=yesterday", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		do(r, http.MethodGet, "/api/statistics?start_date=2024-02-01T00:00:00Z&end_date=2024-01-01T00:00:00Z", "").Code)
}
