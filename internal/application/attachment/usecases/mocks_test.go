package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
)

type stubTicketRepository struct {
	ticket.TicketRepository
	tickets map[uint]*ticket.Ticket
}

func (r *stubTicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	return r.tickets[id], nil
}

type mockAttachmentRepository struct {
	ticket.AttachmentRepository
	rows           map[uint]*ticket.Attachment
	existing       int64
	CreateBatchErr error
	DeleteErr      error
	created        []*ticket.Attachment
	deleted        []uint
}

func (m *mockAttachmentRepository) CreateBatch(_ context.Context, attachments []*ticket.Attachment) error {
	if m.CreateBatchErr != nil {
		return m.CreateBatchErr
	}
	m.created = append(m.created, attachments...)
	return nil
}

func (m *mockAttachmentRepository) GetByID(_ context.Context, id uint) (*ticket.Attachment, error) {
	return m.rows[id], nil
}

func (m *mockAttachmentRepository) Delete(_ context.Context, id uint) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAttachmentRepository) CountByTicketID(context.Context, uint) (int64, error) {
	return m.existing, nil
}

type recordingActivityRepository struct {
	entries []*ticket.ActivityEntry
}

func (r *recordingActivityRepository) Append(_ context.Context, entry *ticket.ActivityEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingActivityRepository) ListByTicketID(context.Context, uint) ([]*ticket.ActivityEntry, error) {
	return r.entries, nil
}

// memoryBlobStore keeps blobs in a map keyed by a "mem:" handle.
type memoryBlobStore struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	puts      int
	failPutAt int
	deleteErr error
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *memoryBlobStore) Put(_ context.Context, path string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.failPutAt > 0 && s.puts == s.failPutAt {
		return "", errors.New("bucket unavailable")
	}
	url := "mem:" + path
	s.blobs[url] = data
	return url, nil
}

func (s *memoryBlobStore) Delete(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.blobs, url)
	return nil
}

func (s *memoryBlobStore) Open(_ context.Context, url string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[url]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memoryBlobStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 32)...)
	pngBytes  = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, make([]byte, 32)...)
	gifBytes  = append([]byte("GIF89a"), make([]byte, 32)...)
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 32)...)
	// PNG header, IHDR chunk, then the acTL chunk that marks an animated PNG.
	apngBytes = append(append(append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n',
		0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}, make([]byte, 17)...),
		0x00, 0x00, 0x00, 0x08, 'a', 'c', 'T', 'L'), make([]byte, 12)...)
)

func newTestTicket(t *testing.T, id uint, status vo.TicketStatus, submitterID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	var completedAt *time.Time
	if status.IsCompleted() {
		now := time.Now()
		completedAt = &now
	}
	tk, err := ticket.ReconstructTicket(id, "Cracked window", "Bedroom window cracked during storm",
		vo.CategoryStructural, vo.PriorityHigh, status, 1, submitterID, assigneeID, "", 1,
		time.Now(), time.Now(), completedAt)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint {
	return &v
}
