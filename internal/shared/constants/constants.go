package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	HeaderXRequestID = "X-Request-ID"

	// Database table names
	TableUsers             = "users"
	TableProperties        = "properties"
	TableTickets           = "maintenance_tickets"
	TableTicketComments    = "ticket_comments"
	TableTicketActivityLog = "ticket_activity_logs"
	TableTicketAttachments = "ticket_attachments"
	TableNotifications     = "notifications"

	// Upload requests carry a full batch plus multipart framing.
	MaxUploadRequestBytes = MaxAttachmentsPerTicket*MaxAttachmentBytes + 1024*1024
	MaxAvatarRequestBytes = MaxAttachmentBytes + 64*1024

	// Ticket limits
	MaxAttachmentsPerTicket = 5
	MaxAttachmentBytes      = 5 * 1024 * 1024
	MaxCommentLength        = 2000
	NotificationListLimit   = 50
	RecentTicketsLimit      = 5
)
