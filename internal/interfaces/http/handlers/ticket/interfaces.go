package ticket

import (
	"context"

	"github.com/compiler-aditya/PropTech/internal/application/ticket/dto"
	"github.com/compiler-aditya/PropTech/internal/application/ticket/usecases"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
)

// Use case interfaces for TicketHandler - enables unit testing with mocks.

type createTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type listTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type getTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type assignTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTicketCommand) (*dto.TicketDTO, error)
}

type changeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.TicketDTO, error)
}

type changePriorityExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangePriorityCommand) (*dto.TicketDTO, error)
}

type addCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error)
}

type dashboardStatsExecutor interface {
	Execute(ctx context.Context, actor authorization.Actor) (*dto.DashboardStatsDTO, error)
}
