package utils

import (
	"net/url"
)

// BuildGoogleCalendarURL returns a Google Calendar "add event" deeplink
// for scheduling a generated post. The posting-time hint is free text
// from the AI, so it is appended to the event details rather than
// parsed into a concrete date.
func BuildGoogleCalendarURL(title, description, bestTime string) string {
	details := description
	if bestTime != "" {
		details += "\n\nBest time: " + bestTime
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", "Publish: "+title)
	q.Set("details", details)

	return "https://calendar.google.com/calendar/render?" + q.Encode()
}
