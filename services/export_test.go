package services

import (
	"bytes"
	"strings"
	"testing"

	"social-marketing-platform/models"

	"github.com/xuri/excelize/v2"
)

func samplePost() *models.GeneratedPost {
	return &models.GeneratedPost{
		Image: "aW1n",
		Content: models.PostContent{
			Title:           "Launch day",
			Caption:         "We are live",
			Hashtags:        []string{"launch", "tech"},
			BestTimeToPost:  "Tuesday 6-8 PM",
			ContentStrategy: "Ride the wave",
			TargetAudience:  "Early adopters",
			CallToAction:    "Follow us",
		},
		MarketingInsights: "Post early.",
		ImagePrompt:       "prompt",
	}
}

func TestBuildPostText(t *testing.T) {
	text := string(BuildPostText(samplePost()))

	for _, want := range []string{"Launch day", "We are live", "#launch #tech", "Tuesday 6-8 PM", "Post early."} {
		if !strings.Contains(text, want) {
			t.Errorf("text export missing %q:\n%s", want, text)
		}
	}
}

func TestBuildPostJSON(t *testing.T) {
	data, err := BuildPostJSON(samplePost())
	if err != nil {
		t.Fatalf("BuildPostJSON: %v", err)
	}
	if !strings.Contains(string(data), `"marketingInsights"`) {
		t.Errorf("json export missing field: %s", data)
	}
}

func TestBuildTopicsWorkbook(t *testing.T) {
	topics := []models.Topic{
		{Title: "Topic A", Description: "Desc A", BestDays: []string{"Mon", "Wed"}, Hashtags: []string{"a"}, ContentType: "reel"},
		{Title: "Topic B", Description: "Desc B", BestDays: []string{"Fri"}, Hashtags: []string{"b", "c"}, ContentType: "post"},
	}

	buf, err := BuildTopicsWorkbook("May", topics)
	if err != nil {
		t.Fatalf("BuildTopicsWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("May", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "Topic A" {
		t.Errorf("A2 = %q, want Topic A", got)
	}

	got, _ = f.GetCellValue("May", "D3")
	if got != "#b #c" {
		t.Errorf("D3 = %q, want hashtag line", got)
	}
}
