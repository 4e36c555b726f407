package usecases

import (
	"context"

	appnotification "github.com/compiler-aditya/PropTech/internal/application/notification"
)

// TransactionManager runs fn in one database transaction carried by the ctx it
// passes to fn.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	Notify(ctx context.Context, in appnotification.NotifyInput) error
}
