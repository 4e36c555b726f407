package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/shared/logger"
	"github.com/compiler-aditya/PropTech/internal/shared/markdown"
)

func TestNotificationTemplate_Render(t *testing.T) {
	tpl := NewNotificationTemplate("https://app.example.com/", markdown.NewService())

	tests := []struct {
		name        string
		message     string
		linkURL     string
		contains    []string
		notContains []string
	}{
		{
			name:     "link is absolute",
			message:  `Your ticket "Leaking sink" is now IN PROGRESS`,
			linkURL:  "/tickets/7",
			contains: []string{"https://app.example.com/tickets/7", "View Details", "Leaking sink"},
		},
		{
			name:        "no link no button",
			message:     "hello",
			notContains: []string{"View Details"},
		},
		{
			name:        "script in message is removed",
			message:     "Tom commented on: <script>alert(1)</script>",
			notContains: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tpl.Render("Status Changed", "Ticket Updated", tt.message, tt.linkURL)
			require.NoError(t, err)
			assert.Contains(t, out, "Ticket Updated")
			assert.Contains(t, out, "Status Changed")
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestNopMailer(t *testing.T) {
	m := NewNopMailer(logger.NewLogger())
	assert.NoError(t, m.Send(context.Background(), "a@example.com", "s", "<p>x</p>"))
}

func TestSMTPMailer_HonoursCancelledContext(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "localhost", Port: 2525, Username: "u"}, markdown.NewService())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Send(ctx, "a@example.com", "s", "<p>x</p>"), context.Canceled)
}
