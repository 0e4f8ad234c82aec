package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retail_assistant/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	getRoutes(r, config.Config{
		Storage:      config.StorageMemory,
		SMTP:         config.SMTP{Mock: true},
		Company:      config.Company{Name: "MayfairTech", Email: "support@mayfairtech.ai"},
		SalesEmail:   "sales@mayfairtech.ai",
		SupportEmail: "support@mayfairtech.ai",
	})
	return r
}

func call(t *testing.T, r http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w.Code, out
}

func TestRoutes_Ping(t *testing.T) {
	r := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_OrderLifecycle(t *testing.T) {
	r := newTestEngine()

	code, body := call(t, r, http.MethodPost, "/v1/sessions/call-1/orders",
		`{"customer_name":"Jane Doe","customer_email":"jane@example.com","country":"Pakistan",
		  "items":[{"category":"smartphones","brand":"Samsung","model":"Galaxy S23","quantity":2}]}`)
	require.Equal(t, http.StatusOK, code, body)
	order := body["order"].(map[string]any)
	assert.Equal(t, "2000.00", order["subtotal"])
	assert.Equal(t, "0.00", order["shipping_cost"])
	assert.Equal(t, "2000.00", order["total"])

	code, body = call(t, r, http.MethodPost, "/v1/sessions/call-1/orders/confirm", "")
	require.Equal(t, http.StatusCreated, code, body)
	id := body["order"].(map[string]any)["id"].(string)
	assert.Empty(t, body["warnings"])

	code, body = call(t, r, http.MethodGet, "/v1/orders/"+id, "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "confirmed", body["order"].(map[string]any)["status"])

	code, _ = call(t, r, http.MethodPost, "/v1/sessions/call-1/orders/confirm", "")
	assert.Equal(t, http.StatusConflict, code)
}

func TestRoutes_ComplaintThroughTools(t *testing.T) {
	r := newTestEngine()

	code, body := call(t, r, http.MethodPost, "/v1/sessions/call-2/tools/register_complaint",
		`{"name":"Sara Ali","email":"sara@example.com","complaint":"The charger stopped working."}`)
	require.Equal(t, http.StatusOK, code, body)

	code, body = call(t, r, http.MethodPost, "/v1/sessions/call-2/complaints/resolve", `{"action":"confirm"}`)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "confirmed", body["status"])

	code, _ = call(t, r, http.MethodDelete, "/v1/sessions/call-2", "")
	assert.Equal(t, http.StatusNoContent, code)
}

func TestRoutes_CompanyKnowledge(t *testing.T) {
	r := newTestEngine()

	code, body := call(t, r, http.MethodGet, "/v1/company/info?query=WARRANTY", "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, "Do your products come with a warranty?", body["question"])

	code, body = call(t, r, http.MethodGet, "/v1/company/leadership", "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Contains(t, body["team"], "Chief Executive Officer")
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Minute, sweepInterval(30*time.Minute))
	assert.Equal(t, 10*time.Second, sweepInterval(40*time.Second))
}
