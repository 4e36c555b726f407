package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

const (
	MaxCommentLength     = 2000
	commentPreviewLength = 100
)

type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	content   string
	createdAt time.Time
}

// NewComment trims content and enforces the 1..2000 character bound.
func NewComment(ticketID uint, authorID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	content = strings.TrimSpace(content)
	if err := ValidateCommentContent(content); err != nil {
		return nil, err
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ValidateCommentContent checks already-trimmed content.
func ValidateCommentContent(content string) error {
	if content == "" {
		return errors.NewValidationError(MsgCommentEmpty)
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return errors.NewValidationError(MsgCommentTooLong)
	}
	return nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

// Preview is the first 100 characters of the content.
func (c *Comment) Preview() string {
	if utf8.RuneCountInString(c.content) <= commentPreviewLength {
		return c.content
	}
	return string([]rune(c.content)[:commentPreviewLength])
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
