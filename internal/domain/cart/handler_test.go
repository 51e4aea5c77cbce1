package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medcart/medcart/internal/platform/auth"
)

func newTestHandler() (*Handler, *fixture, *echo.Echo) {
	f := newFixture()
	return NewHandler(f.svc), f, echo.New()
}

func authedContext(e *echo.Echo, f *fixture, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	ctx := auth.WithIdentity(req.Context(), f.patientID.String(), "patient")
	c := e.NewContext(req.WithContext(ctx), rec)
	return c
}

func TestHandler_AddToCart(t *testing.T) {
	h, f, e := newTestHandler()
	medID := f.addMedicine("Aspirin", 5.0, 10, true)

	body := fmt.Sprintf(`{"medicine_id":%q,"quantity":2}`, medID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddToCart(authedContext(e, f, req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_AddToCart_MissingMedicineID(t *testing.T) {
	h, f, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(`{"quantity":2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.AddToCart(authedContext(e, f, req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 error, got %v", err)
	}
}

func TestHandler_AddToCart_ExceedsStock(t *testing.T) {
	h, f, e := newTestHandler()
	medID := f.addMedicine("Aspirin", 5.0, 1, true)

	body := fmt.Sprintf(`{"medicine_id":%q,"quantity":5}`, medID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.AddToCart(authedContext(e, f, req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 error, got %v", err)
	}
}

func TestHandler_GetCart(t *testing.T) {
	h, f, e := newTestHandler()
	f.discounts.discount = 0.10
	medID := f.addMedicine("Aspirin", 20.0, 10, true)
	_ = f.svc.AddToCart(context.Background(), f.patientID, medID, 1, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()

	if err := h.GetCart(authedContext(e, f, req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var items []*PricedItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(items) != 1 || items[0].Price != 18.00 {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestHandler_ChangeQuantity(t *testing.T) {
	h, f, e := newTestHandler()
	medID := f.addMedicine("Aspirin", 5.0, 10, true)
	_ = f.svc.AddToCart(context.Background(), f.patientID, medID, 1, false)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, f, req, rec)
	c.SetParamNames("medicineId", "newQuantity")
	c.SetParamValues(medID.String(), "4")

	if err := h.ChangeQuantity(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, _ := f.carts.Get(context.Background(), f.patientID, medID)
	if item.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", item.Quantity)
	}
}

func TestHandler_ChangeQuantity_BadParam(t *testing.T) {
	h, f, e := newTestHandler()
	medID := f.addMedicine("Aspirin", 5.0, 10, true)

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, f, req, rec)
	c.SetParamNames("medicineId", "newQuantity")
	c.SetParamValues(medID.String(), "three")

	err := h.ChangeQuantity(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 error, got %v", err)
	}
}

func TestHandler_ClearCart(t *testing.T) {
	h, f, e := newTestHandler()
	medID := f.addMedicine("Aspirin", 5.0, 10, true)
	_ = f.svc.AddToCart(context.Background(), f.patientID, medID, 1, false)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()

	if err := h.ClearCart(authedContext(e, f, req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.carts.items) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(f.carts.items))
	}
}
