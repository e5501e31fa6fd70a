package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

func TestAlertService_ListAlerts_ScopedByRole(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.Alert{
		{ID: "a1", UserID: "u1"},
		{ID: "a2", UserID: "u2"},
	}}
	svc := NewAlertService(repo, &stubActivity{}, zerolog.Nop())

	own, err := svc.ListAlerts(context.Background(), domain.RoleVet, "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || own[0].ID != "a2" {
		t.Errorf("vet should only see own alerts, got %+v", own)
	}

	all, err := svc.ListAlerts(context.Background(), domain.RoleAdmin, "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin should see all alerts, got %d", len(all))
	}
}

func TestAlertService_MarkRead_OwnAlert(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.Alert{{ID: "a1", UserID: "u1"}}}
	activity := &stubActivity{}
	svc := NewAlertService(repo, activity, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "a1", domain.RoleFarmer, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.alerts[0].Read {
		t.Error("alert should be marked read")
	}
	if len(activity.events) != 1 || activity.events[0].Kind != domain.ActivityAlertRead {
		t.Errorf("expected one alert_read event, got %+v", activity.events)
	}
}

func TestAlertService_MarkRead_Idempotent(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.Alert{{ID: "a1", UserID: "u1", Read: true}}}
	svc := NewAlertService(repo, &stubActivity{}, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "a1", domain.RoleFarmer, "u1"); err != nil {
		t.Fatalf("re-acknowledging a read alert must succeed, got %v", err)
	}
}

func TestAlertService_MarkRead_OtherOwnerHidden(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.Alert{{ID: "a1", UserID: "u1"}}}
	activity := &stubActivity{}
	svc := NewAlertService(repo, activity, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "a1", domain.RoleFarmer, "u2"); err != domain.ErrAlertNotFound {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
	if repo.alerts[0].Read {
		t.Error("alert must stay unread")
	}
	if len(activity.events) != 0 {
		t.Error("no activity should be recorded for a failed acknowledgement")
	}
}

func TestAlertService_MarkRead_AdminSeesAll(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.Alert{{ID: "a1", UserID: "u1"}}}
	svc := NewAlertService(repo, &stubActivity{}, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "a1", domain.RoleAdmin, "u9"); err != nil {
		t.Fatalf("admin acknowledgement failed: %v", err)
	}
	if !repo.alerts[0].Read {
		t.Error("alert should be marked read")
	}
}
