package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/compiler-aditya/PropTech/internal/shared/markdown"
)

var layout = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8" /><meta name="viewport" content="width=device-width,initial-scale=1.0" /></head>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;padding:32px 0;">
    <tr><td align="center">
      <table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
        <tr><td style="background-color:#1e293b;padding:24px 32px;">
          <h1 style="margin:0;color:#ffffff;font-size:20px;font-weight:600;">PropTech</h1>
          {{if .Category}}<p style="margin:4px 0 0;color:#cbd5e1;font-size:12px;">{{.Category}}</p>{{end}}
        </td></tr>
        <tr><td style="padding:32px;color:#475569;font-size:15px;line-height:1.6;">
          <h2 style="margin:0 0 12px;color:#1e293b;font-size:18px;font-weight:600;">{{.Title}}</h2>
          {{.Body}}
          {{if .Link}}<a href="{{.Link}}" style="display:inline-block;background-color:#2563eb;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:6px;font-size:14px;font-weight:500;">View Details</a>{{end}}
        </td></tr>
        <tr><td style="padding:20px 32px;background-color:#f8fafc;border-top:1px solid #e2e8f0;">
          <p style="margin:0;color:#94a3b8;font-size:12px;">This is an automated notification from PropTech Property Management.</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

// NotificationTemplate renders the HTML copy of an in-app notification.
type NotificationTemplate struct {
	appURL string
	md     markdown.Service
}

func NewNotificationTemplate(appURL string, md markdown.Service) *NotificationTemplate {
	return &NotificationTemplate{
		appURL: strings.TrimRight(appURL, "/"),
		md:     md,
	}
}

// Render builds the mail body. message is treated as markdown and sanitized;
// linkURL is an app-relative path such as /tickets/7.
func (t *NotificationTemplate) Render(category, title, message, linkURL string) (string, error) {
	body, err := t.md.ToHTMLSanitized(message)
	if err != nil {
		return "", err
	}

	var link string
	if linkURL != "" {
		link = t.appURL + linkURL
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, struct {
		Category string
		Title    string
		Body     template.HTML
		Link     string
	}{
		Category: category,
		Title:    title,
		Body:     template.HTML(body), // sanitized above
		Link:     link,
	}); err != nil {
		return "", fmt.Errorf("failed to render notification email: %w", err)
	}
	return buf.String(), nil
}
