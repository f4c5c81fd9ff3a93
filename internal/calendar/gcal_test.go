package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mklein/gateplan/internal/models"
)

func TestEventLink(t *testing.T) {
	item := models.PlanItem{
		Title:       "Deep work block",
		Start:       "09:00",
		DurationMin: 60,
	}

	link, err := EventLink(item, "2026-08-31", time.UTC)
	if err != nil {
		t.Fatalf("EventLink failed: %v", err)
	}
	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link is not a valid URL: %v", err)
	}
	q := u.Query()

	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q", q.Get("action"))
	}
	if q.Get("text") != "Deep work block" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("details") != "Planned via GatePlan" {
		t.Errorf("details = %q", q.Get("details"))
	}
	if got := q.Get("dates"); got != "20260831T090000Z/20260831T100000Z" {
		t.Errorf("dates = %q", got)
	}
}

func TestEventLink_Defaults(t *testing.T) {
	item := models.PlanItem{Title: "Workout"}

	link, err := EventLink(item, "2026-08-31", time.UTC)
	if err != nil {
		t.Fatalf("EventLink failed: %v", err)
	}

	u, _ := url.Parse(link)
	// No start time defaults to 09:00 and no duration to the 30 minute block.
	if got := u.Query().Get("dates"); got != "20260831T090000Z/20260831T093000Z" {
		t.Errorf("dates = %q", got)
	}
}

func TestEventLink_ConvertsToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	item := models.PlanItem{Title: "Workout", Start: "09:00", DurationMin: 30}
	link, err := EventLink(item, "2026-08-31", loc)
	if err != nil {
		t.Fatalf("EventLink failed: %v", err)
	}

	u, _ := url.Parse(link)
	// 09:00 EDT is 13:00 UTC.
	if got := u.Query().Get("dates"); got != "20260831T130000Z/20260831T133000Z" {
		t.Errorf("dates = %q", got)
	}
}

func TestEventLink_InvalidDate(t *testing.T) {
	item := models.PlanItem{Title: "Workout", Start: "09:00"}
	if _, err := EventLink(item, "31/08/2026", time.UTC); err == nil {
		t.Error("expected error for invalid date key")
	}
}
