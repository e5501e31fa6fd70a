package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

type stubAlertService struct {
	listFn     func(ctx context.Context, role, userID string) ([]*domain.Alert, error)
	markReadFn func(ctx context.Context, id, role, userID string) error
}

func (s *stubAlertService) ListAlerts(ctx context.Context, role, userID string) ([]*domain.Alert, error) {
	return s.listFn(ctx, role, userID)
}

func (s *stubAlertService) MarkRead(ctx context.Context, id, role, userID string) error {
	return s.markReadFn(ctx, id, role, userID)
}

func TestAlertHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubAlertService{
		listFn: func(_ context.Context, role, userID string) ([]*domain.Alert, error) {
			return []*domain.Alert{{ID: "a1", UserID: userID, Priority: domain.PriorityHigh}}, nil
		},
	}
	handler := NewAlertHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["priority"] != "high" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAlertHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubAlertService{
		listFn: func(context.Context, string, string) ([]*domain.Alert, error) {
			return nil, nil
		},
	}
	handler := NewAlertHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/alerts", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("empty listing must encode as [], got %q", got)
	}
}

func TestAlertHandler_MarkRead_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAlertService{
		markReadFn: func(_ context.Context, id, role, userID string) error {
			if id != "a1" || role != domain.RoleFarmer || userID != "u1" {
				t.Fatalf("unexpected args: %s %s %s", id, role, userID)
			}
			return nil
		},
	}
	handler := NewAlertHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/alerts/a1/read", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := handler.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Alert marked as read" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAlertHandler_MarkRead_NotVisible(t *testing.T) {
	e := newTestEcho()
	stub := &stubAlertService{
		markReadFn: func(context.Context, string, string, string) error {
			return domain.ErrAlertNotFound
		},
	}
	handler := NewAlertHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/api/alerts/a9/read", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)
	c.SetParamNames("id")
	c.SetParamValues("a9")

	if err := handler.MarkRead(c); !errors.Is(err, domain.ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
}
