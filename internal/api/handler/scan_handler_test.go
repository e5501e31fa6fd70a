package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

type stubScanService struct {
	submitFn func(ctx context.Context, input ports.SubmitScanInput) (*domain.Classification, error)
	listFn   func(ctx context.Context, role, userID string) ([]*domain.Scan, error)
}

func (s *stubScanService) SubmitScan(ctx context.Context, input ports.SubmitScanInput) (*domain.Classification, error) {
	return s.submitFn(ctx, input)
}

func (s *stubScanService) ListScans(ctx context.Context, role, userID string) ([]*domain.Scan, error) {
	return s.listFn(ctx, role, userID)
}

func multipartScanRequest(t *testing.T, filename string, payload []byte, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/scan", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestScanHandler_Submit_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubScanService{
		submitFn: func(_ context.Context, input ports.SubmitScanInput) (*domain.Classification, error) {
			if input.UserID != "u1" {
				t.Fatalf("user id = %q, want u1", input.UserID)
			}
			if input.Image.Filename != "cow.jpg" || len(input.Image.Data) == 0 {
				t.Fatalf("image not forwarded: %+v", input.Image)
			}
			if input.AnimalID != "cow-7" || input.Notes != "left flank" {
				t.Fatalf("form fields not forwarded: %q %q", input.AnimalID, input.Notes)
			}
			return &domain.Classification{Result: domain.ResultHealthy, Confidence: 0.93}, nil
		},
	}
	handler := NewScanHandler(stub)

	req := multipartScanRequest(t, "cow.jpg", []byte("jpegdata"), map[string]string{
		"animalId": "cow-7",
		"notes":    "left flank",
	})
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["result"] != "healthy" {
		t.Fatalf("result = %v, want healthy", resp["result"])
	}
}

func TestScanHandler_Submit_NoImage(t *testing.T) {
	e := newTestEcho()
	stub := &stubScanService{
		submitFn: func(context.Context, ports.SubmitScanInput) (*domain.Classification, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewScanHandler(stub)

	req := multipartScanRequest(t, "", nil, nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.Submit(c); !errors.Is(err, domain.ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}

func TestScanHandler_Submit_DisallowedExtension(t *testing.T) {
	e := newTestEcho()
	stub := &stubScanService{
		submitFn: func(context.Context, ports.SubmitScanInput) (*domain.Classification, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewScanHandler(stub)

	req := multipartScanRequest(t, "malware.exe", []byte("mz"), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.Submit(c); !errors.Is(err, domain.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestScanHandler_Submit_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewScanHandler(&stubScanService{})

	req := multipartScanRequest(t, "cow.jpg", []byte("jpegdata"), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Submit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestScanHandler_List_EmptyIsArray(t *testing.T) {
	e := newTestEcho()
	stub := &stubScanService{
		listFn: func(_ context.Context, role, userID string) ([]*domain.Scan, error) {
			if role != domain.RoleFarmer || userID != "u1" {
				t.Fatalf("unexpected scope: %s %s", role, userID)
			}
			return nil, nil
		},
	}
	handler := NewScanHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1", domain.RoleFarmer)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("empty listing must encode as [], got %q", got)
	}
}
