package usecases

import (
	"context"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/ticket"
	vo "github.com/compiler-aditya/PropTech/internal/domain/ticket/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// internalOr passes application errors through and hides everything else
// behind a generic message.
func internalOr(err error, message string) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewInternalError(message)
}

// scopeFor limits queries to what the actor may see.
func scopeFor(actor authorization.Actor) ticket.TicketScope {
	id := actor.ID
	switch actor.Role {
	case authorization.RoleTenant:
		return ticket.TicketScope{SubmitterID: &id}
	case authorization.RoleTechnician:
		return ticket.TicketScope{AssigneeID: &id}
	default:
		return ticket.TicketScope{}
	}
}

func appendActivity(
	ctx context.Context,
	repo ticket.ActivityRepository,
	ticketID, actorID uint,
	action vo.ActivityAction,
	details map[string]interface{},
) error {
	entry, err := ticket.NewActivityEntry(ticketID, actorID, action, details)
	if err != nil {
		return err
	}
	return repo.Append(ctx, entry)
}

// notifyAll runs after commit, so failures are logged and never returned.
func notifyAll(ctx context.Context, notifier Notifier, log logger.Interface, inputs ...appnotification.NotifyInput) {
	for _, in := range inputs {
		if err := notifier.Notify(ctx, in); err != nil {
			log.Errorw("failed to dispatch notification",
				"error", err,
				"recipient_id", in.RecipientID,
				"type", in.Type)
		}
	}
}

type lookups struct {
	properties map[uint]*property.Property
	users      map[uint]*user.User
}

// readModelLoader batches the property and user lookups behind ticket views.
type readModelLoader struct {
	propertyRepo property.Repository
	userRepo     user.Repository
}

func (l readModelLoader) load(ctx context.Context, tickets []*ticket.Ticket, extraUserIDs ...uint) (*lookups, error) {
	propertyIDs := make([]uint, 0, len(tickets))
	userIDs := make([]uint, 0, len(tickets)*2+len(extraUserIDs))
	for _, t := range tickets {
		propertyIDs = append(propertyIDs, t.PropertyID())
		userIDs = append(userIDs, t.SubmitterID())
		if t.AssigneeID() != nil {
			userIDs = append(userIDs, *t.AssigneeID())
		}
	}
	userIDs = append(userIDs, extraUserIDs...)

	out := &lookups{
		properties: make(map[uint]*property.Property),
		users:      make(map[uint]*user.User),
	}

	if ids := uniqueIDs(propertyIDs); len(ids) > 0 {
		props, err := l.propertyRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range props {
			out.properties[p.ID()] = p
		}
	}

	if ids := uniqueIDs(userIDs); len(ids) > 0 {
		users, err := l.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			out.users[u.ID()] = u
		}
	}

	return out, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func ticketIDs(tickets []*ticket.Ticket) []uint {
	ids := make([]uint, len(tickets))
	for i, t := range tickets {
		ids[i] = t.ID()
	}
	return ids
}
