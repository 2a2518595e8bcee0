package appointment

import (
	"testing"
	"time"

	"github.com/nerobarber/booking-api/internal/httperr"
	"github.com/nerobarber/booking-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to completed skips", StatusPending, StatusCompleted, false},
		{"confirmed to pending backward", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"completed to completed repeat", StatusCompleted, StatusCompleted, false},
		{"pending to pending repeat", StatusPending, StatusPending, false},
		{"completed backward to pending", StatusCompleted, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok && err != nil {
				t.Fatalf("CanTransition(%s, %s) = %v, want nil", tc.from, tc.to, err)
			}
			if !tc.ok {
				if !httperr.IsBusiness(err, "invalid_transition") {
					t.Fatalf("CanTransition(%s, %s) = %v, want invalid_transition", tc.from, tc.to, err)
				}
			}
		})
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if err := CanTransition("cancelled", StatusConfirmed); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("unknown from status: got %v, want invalid_status", err)
	}
	if err := CanTransition(StatusPending, "archived"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("unknown target status: got %v, want invalid_status", err)
	}
}

func TestConfirmSetsTimestamp(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusPending)}

	if err := Confirm(ap, now); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", ap.Status)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Fatalf("ConfirmedAt = %v, want %v", ap.ConfirmedAt, now)
	}
	if ap.CompletedAt != nil {
		t.Fatalf("CompletedAt must stay nil on confirm")
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Complete(ap, now); err == nil {
		t.Fatalf("completing a pending appointment must fail")
	}
	if ap.Status != string(StatusPending) {
		t.Fatalf("failed transition must not mutate status, got %q", ap.Status)
	}

	ap.Status = string(StatusConfirmed)
	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatalf("CompletedAt not set")
	}
}

func TestApplyRejectsPendingTarget(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Apply(ap, StatusPending, time.Now()); err == nil {
		t.Fatalf("pending is never a valid target")
	}
}
