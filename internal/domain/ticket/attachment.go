package ticket

import (
	"fmt"
	"time"

	"github.com/compiler-aditya/PropTech/internal/shared/biztime"
)

// MaxAttachmentsPerTicket bounds the number of files bound to one ticket.
const MaxAttachmentsPerTicket = 5

// Attachment is a file bound to a ticket. storageURL is the opaque handle
// returned by the blob store.
type Attachment struct {
	id         uint
	ticketID   uint
	uploadedBy uint
	filename   string
	storedName string
	storageURL string
	mimeType   string
	size       int64
	createdAt  time.Time
}

func NewAttachment(
	ticketID uint,
	uploadedBy uint,
	filename string,
	storedName string,
	storageURL string,
	mimeType string,
	size int64,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if storageURL == "" {
		return nil, fmt.Errorf("storage URL is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		ticketID:   ticketID,
		uploadedBy: uploadedBy,
		filename:   filename,
		storedName: storedName,
		storageURL: storageURL,
		mimeType:   mimeType,
		size:       size,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	uploadedBy uint,
	filename string,
	storedName string,
	storageURL string,
	mimeType string,
	size int64,
	createdAt time.Time,
) *Attachment {
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		uploadedBy: uploadedBy,
		filename:   filename,
		storedName: storedName,
		storageURL: storageURL,
		mimeType:   mimeType,
		size:       size,
		createdAt:  createdAt,
	}
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploadedBy() uint {
	return a.uploadedBy
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) StorageURL() string {
	return a.storageURL
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	a.id = id
	return nil
}
