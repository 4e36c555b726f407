package models

// All returns every persisted model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PropertyModel{},
		&TicketModel{},
		&CommentModel{},
		&ActivityLogModel{},
		&AttachmentModel{},
		&NotificationModel{},
	}
}
