package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"social-marketing-platform/models"

	"github.com/xuri/excelize/v2"
)

// Export formatting for the download buttons in the presentation
// layer: a generated post as plain text or JSON, and a month of topic
// suggestions as an Excel content plan.

// BuildPostText renders a generated post as a human-readable text dump.
func BuildPostText(post *models.GeneratedPost) []byte {
	var b strings.Builder

	b.WriteString(post.Content.Title + "\n\n")
	b.WriteString(post.Content.Caption + "\n\n")

	b.WriteString("Hashtags: ")
	for i, tag := range post.Content.Hashtags {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("#" + tag)
	}
	b.WriteString("\n\n")

	b.WriteString("Best time to post: " + post.Content.BestTimeToPost + "\n")
	b.WriteString("Target audience: " + post.Content.TargetAudience + "\n")
	b.WriteString("Call to action: " + post.Content.CallToAction + "\n\n")
	b.WriteString("Content strategy:\n" + post.Content.ContentStrategy + "\n\n")
	b.WriteString("Marketing insights:\n" + post.MarketingInsights + "\n")

	return []byte(b.String())
}

// BuildPostJSON renders the full post object, image included, as
// indented JSON.
func BuildPostJSON(post *models.GeneratedPost) ([]byte, error) {
	return json.MarshalIndent(post, "", "  ")
}

// BuildTopicsWorkbook renders a topic list as a single-sheet .xlsx
// content plan for the given month.
func BuildTopicsWorkbook(monthName string, topics []models.Topic) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, monthName); err != nil {
		return nil, err
	}
	sheet = monthName

	headers := []string{"Title", "Description", "Best Days", "Hashtags", "Content Type"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, topic := range topics {
		values := []string{
			topic.Title,
			topic.Description,
			strings.Join(topic.BestDays, ", "),
			hashtagLine(topic.Hashtags),
			topic.ContentType,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func hashtagLine(tags []string) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = "#" + tag
	}
	return strings.Join(out, " ")
}
