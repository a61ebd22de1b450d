package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The templates directory lives at the repository root, two levels up from
// this package.
var templatesDir = filepath.Join("..", "..", "templates")

func TestRenderDecisionEmailTemplate(t *testing.T) {
	body, err := RenderEmailTemplate(templatesDir, "decision_email.html", TemplateData{
		RecipientName: "Maria",
		EventTitle:    "Coastal Cleanup",
		EventDate:     "March 9, 2026",
		TimeSlot:      "10:00 AM - 11:00 AM",
		Decision:      "approved",
		Note:          "Bring gloves",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Maria,")
	assert.Contains(t, body, "<strong>Coastal Cleanup</strong>")
	assert.Contains(t, body, "<strong>approved</strong>")
	assert.Contains(t, body, "Your time slot: 10:00 AM - 11:00 AM")
	assert.Contains(t, body, "Note from the organizer: Bring gloves")
}

func TestRenderDecisionEmailTemplateOmitsEmptySections(t *testing.T) {
	body, err := RenderEmailTemplate(templatesDir, "decision_email.html", TemplateData{
		RecipientName: "Maria",
		EventTitle:    "Coastal Cleanup",
		EventDate:     "March 9, 2026",
		Decision:      "rejected",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "<strong>rejected</strong>")
	assert.NotContains(t, body, "Your time slot")
	assert.NotContains(t, body, "Note from the organizer")
}

func TestRenderEmailTemplateMissingFile(t *testing.T) {
	_, err := RenderEmailTemplate(templatesDir, "no_such_template.html", TemplateData{})
	assert.Error(t, err)
}
