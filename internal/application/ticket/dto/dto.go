package dto

import "time"

type UserSummaryDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type PropertySummaryDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type TicketDTO struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Priority    string              `json:"priority"`
	Status      string              `json:"status"`
	UnitNumber  string              `json:"unit_number,omitempty"`
	Property    *PropertySummaryDTO `json:"property,omitempty"`
	Submitter   *UserSummaryDTO     `json:"submitter,omitempty"`
	Assignee    *UserSummaryDTO     `json:"assignee,omitempty"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

type TicketListItemDTO struct {
	TicketDTO
	CommentCount    int64 `json:"comment_count"`
	AttachmentCount int64 `json:"attachment_count"`
}

type ActivityDTO struct {
	ID          uint                   `json:"id"`
	Action      string                 `json:"action"`
	Details     map[string]interface{} `json:"details"`
	PerformedBy *UserSummaryDTO        `json:"performed_by,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

type CommentDTO struct {
	ID        uint            `json:"id"`
	TicketID  uint            `json:"ticket_id"`
	Content   string          `json:"content"`
	Author    *UserSummaryDTO `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	UploadedBy uint      `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketDetailDTO struct {
	TicketDTO
	Activity    []*ActivityDTO   `json:"activity"`
	Comments    []*CommentDTO    `json:"comments"`
	Attachments []*AttachmentDTO `json:"attachments"`
}

type DashboardStatsDTO struct {
	Total         int64            `json:"total"`
	CountByStatus map[string]int64 `json:"count_by_status"`
	Recent        []*TicketDTO     `json:"recent"`
}
