package utils

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildGoogleCalendarURL(t *testing.T) {
	link := BuildGoogleCalendarURL("Launch day", "Post goes live", "Tuesday 6-8 PM")

	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("unexpected base url: %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := parsed.Query()

	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q", q.Get("action"))
	}
	if q.Get("text") != "Publish: Launch day" {
		t.Errorf("text = %q", q.Get("text"))
	}
	details := q.Get("details")
	if !strings.Contains(details, "Post goes live") || !strings.Contains(details, "Best time: Tuesday 6-8 PM") {
		t.Errorf("details = %q", details)
	}
}

func TestBuildGoogleCalendarURLWithoutTimeHint(t *testing.T) {
	link := BuildGoogleCalendarURL("Launch day", "Post goes live", "")

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if strings.Contains(parsed.Query().Get("details"), "Best time") {
		t.Error("details should omit the time line when no hint is given")
	}
}
