// Package notification fans ticket events out to in-app notifications and
// best-effort email copies.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/compiler-aditya/PropTech/internal/domain/notification"
	vo "github.com/compiler-aditya/PropTech/internal/domain/notification/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/goroutine"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const defaultEmailTimeout = 30 * time.Second

type NotifyInput struct {
	RecipientID uint
	Type        vo.NotificationType
	Title       string
	Message     string
	LinkURL     string
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type EmailRenderer interface {
	Render(category, title, message, linkURL string) (string, error)
}

type RecipientLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// Dispatcher persists a notification before returning and sends its email copy
// on a detached goroutine. Email failures are logged and never returned.
type Dispatcher struct {
	repo         domain.NotificationRepository
	users        RecipientLookup
	mailer       Mailer
	renderer     EmailRenderer
	logger       logger.Interface
	emailTimeout time.Duration
	inflight     sync.WaitGroup
}

func NewDispatcher(
	repo domain.NotificationRepository,
	users RecipientLookup,
	mailer Mailer,
	renderer EmailRenderer,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		repo:         repo,
		users:        users,
		mailer:       mailer,
		renderer:     renderer,
		logger:       logger,
		emailTimeout: defaultEmailTimeout,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, in NotifyInput) error {
	if !in.Type.IsValid() {
		d.logger.Errorw("unknown notification type", "type", in.Type, "recipient_id", in.RecipientID)
		return errors.NewInternalError("unknown notification type", in.Type.String())
	}

	n, err := domain.NewNotification(in.RecipientID, in.Type, in.Title, in.Message, in.LinkURL)
	if err != nil {
		d.logger.Errorw("invalid notification", "error", err, "recipient_id", in.RecipientID)
		return errors.NewInternalError("invalid notification", err.Error())
	}

	if err := d.repo.Create(ctx, n); err != nil {
		d.logger.Errorw("failed to persist notification", "error", err, "recipient_id", in.RecipientID)
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	d.sendEmailCopy(context.WithoutCancel(ctx), in)
	return nil
}

func (d *Dispatcher) sendEmailCopy(ctx context.Context, in NotifyInput) {
	if d.mailer == nil || d.renderer == nil {
		return
	}

	d.inflight.Add(1)
	goroutine.SafeGo(d.logger, "notification-email", func() {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(ctx, d.emailTimeout)
		defer cancel()

		recipient, err := d.users.GetByID(ctx, in.RecipientID)
		if err != nil {
			d.logger.Warnw("failed to look up notification recipient", "error", err, "recipient_id", in.RecipientID)
			return
		}
		if recipient == nil || recipient.Email() == nil {
			d.logger.Warnw("notification recipient has no email", "recipient_id", in.RecipientID)
			return
		}

		body, err := d.renderer.Render(in.Type.DisplayName(), in.Title, in.Message, in.LinkURL)
		if err != nil {
			d.logger.Warnw("failed to render notification email", "error", err, "type", in.Type)
			return
		}

		if err := d.mailer.Send(ctx, recipient.Email().String(), in.Title, body); err != nil {
			d.logger.Warnw("failed to send notification email",
				"error", err,
				"recipient_id", in.RecipientID,
				"type", in.Type)
			return
		}

		d.logger.Debugw("notification email sent", "recipient_id", in.RecipientID, "type", in.Type)
	})
}

// Wait blocks until every email copy started so far has finished.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}

// Recipients drops zero IDs, duplicates and the actor, keeping first-seen order.
func Recipients(actorID uint, ids ...uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || id == actorID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
