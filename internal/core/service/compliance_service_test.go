package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

func TestComplianceService_Create_Defaults(t *testing.T) {
	repo := &stubComplianceRepo{}
	uploads := &stubUploadStore{}
	svc := NewComplianceService(repo, uploads, zerolog.Nop())

	record, err := svc.Create(context.Background(), ports.CreateComplianceInput{
		UserID: "u1",
		Title:  "Vaccination log",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Category != "general" {
		t.Errorf("category = %q, want general", record.Category)
	}
	if record.Status != domain.CompliancePending {
		t.Errorf("status = %q, want pending", record.Status)
	}
	if record.DocumentPath != "" {
		t.Errorf("no document was uploaded, path = %q", record.DocumentPath)
	}
	if uploads.saved != 0 {
		t.Error("upload store must not be touched without a document")
	}
}

func TestComplianceService_Create_WithDocument(t *testing.T) {
	repo := &stubComplianceRepo{}
	uploads := &stubUploadStore{}
	svc := NewComplianceService(repo, uploads, zerolog.Nop())

	record, err := svc.Create(context.Background(), ports.CreateComplianceInput{
		UserID:   "u1",
		Title:    "Inspection certificate",
		Category: "inspections",
		Document: &ports.ImageUpload{Data: []byte("pdfdata"), Filename: "cert.pdf", ContentType: "application/pdf"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.DocumentPath == "" {
		t.Error("document path must reference the stored file")
	}
	if record.Category != "inspections" {
		t.Errorf("category = %q, want inspections", record.Category)
	}
}

func TestComplianceService_List_ScopedByRole(t *testing.T) {
	repo := &stubComplianceRepo{records: []*domain.ComplianceRecord{
		{ID: "c1", UserID: "u1"},
		{ID: "c2", UserID: "u2"},
	}}
	svc := NewComplianceService(repo, &stubUploadStore{}, zerolog.Nop())

	own, err := svc.List(context.Background(), domain.RoleFarmer, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || own[0].ID != "c1" {
		t.Errorf("farmer should only see own records, got %+v", own)
	}

	all, err := svc.List(context.Background(), domain.RoleAdmin, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin should see all records, got %d", len(all))
	}
}
