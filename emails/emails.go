package emails

import (
	"strings"
	"time"
)

// Email is a synced message as returned by the backend. All AI-derived
// fields (priority, confidence) are computed server-side.
type Email struct {
	ID             string     `json:"id"`
	Subject        string     `json:"subject"`
	Sender         string     `json:"sender"`
	Recipients     []string   `json:"recipients,omitempty"`
	CC             []string   `json:"cc,omitempty"`
	BodyText       string     `json:"body_text,omitempty"`
	ReceivedAt     *time.Time `json:"received_at,omitempty"`
	IsRead         bool       `json:"is_read"`
	IsFlagged      bool       `json:"is_flagged"`
	HasAttachments bool       `json:"has_attachments"`
	PriorityScore  int        `json:"priority_score,omitempty"`
	AIConfidence   float64    `json:"ai_confidence,omitempty"`
}

// Snippet returns the first line of the body, truncated to maxLen runes.
func (e *Email) Snippet(maxLen int) string {
	body := strings.TrimSpace(e.BodyText)
	if idx := strings.IndexAny(body, "\r\n"); idx >= 0 {
		body = body[:idx]
	}
	runes := []rune(body)
	if len(runes) <= maxLen {
		return body
	}
	return string(runes[:maxLen]) + "..."
}
