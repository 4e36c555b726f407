package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

func TestNewComment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"ok", "On my way", ""},
		{"exactly 2000", strings.Repeat("a", 2000), ""},
		{"2000 multibyte runes", strings.Repeat("é", 2000), ""},
		{"empty", "", MsgCommentEmpty},
		{"whitespace only", " \n\t ", MsgCommentEmpty},
		{"2001", strings.Repeat("a", 2001), MsgCommentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(1, 2, tt.content)
			if tt.wantMsg != "" {
				assertAppError(t, err, errors.ErrorTypeValidation, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.content), c.Content())
		})
	}
}

func TestComment_Preview(t *testing.T) {
	short, err := NewComment(1, 2, "  short note  ")
	require.NoError(t, err)
	assert.Equal(t, "short note", short.Preview())

	long, err := NewComment(1, 2, strings.Repeat("ü", 150))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ü", 100), long.Preview())
}

func TestActivityDetails(t *testing.T) {
	assert.Equal(t, map[string]interface{}{
		"technicianName":     "John",
		"technicianId":       uint(5),
		"previousAssigneeId": nil,
	}, AssignedDetails("John", 5, nil))

	prev := uint(4)
	assert.Equal(t, uint(4), AssignedDetails("John", 5, &prev)["previousAssigneeId"])

	names := []string{"a.jpg", "b.png"}
	details := AttachmentAddedDetails(names)
	names[0] = "changed"
	assert.Equal(t, 2, details["count"])
	assert.Equal(t, []string{"a.jpg", "b.png"}, details["filenames"])

	assert.Equal(t, map[string]interface{}{"from": "LOW", "to": "HIGH"},
		PriorityChangedDetails(vo.PriorityLow, vo.PriorityHigh))
}

func TestNewActivityEntry(t *testing.T) {
	_, err := NewActivityEntry(1, 2, "DELETED", nil)
	assert.Error(t, err)

	e, err := NewActivityEntry(1, 2, vo.ActionCreated, nil)
	require.NoError(t, err)
	assert.NotNil(t, e.Details())
}
