package ticket

// User-facing messages. Clients render these verbatim.
const (
	MsgTicketNotFound        = "Ticket not found"
	MsgTechnicianNotFound    = "Technician not found"
	MsgAccessDenied          = "Access denied"
	MsgNotYourTicket         = "Not your ticket"
	MsgInvalidStatus         = "Invalid status"
	MsgInvalidPriority       = "Invalid priority"
	MsgInvalidCategory       = "Please select a valid category"
	MsgPropertyRequired      = "Please select a property"
	MsgTitleTooShort         = "Title must be at least 3 characters"
	MsgTitleTooLong          = "Title must be at most 200 characters"
	MsgDescriptionTooShort   = "Description must be at least 10 characters"
	MsgDescriptionTooLong    = "Description must be at most 5000 characters"
	MsgAssignTechnicianFirst = "Must assign a technician first"
	MsgReopenManagerOnly     = "Only managers can reopen completed tickets"
	MsgTechnicianTargets     = "Technicians can only start, complete, or pause work"
	MsgAssignCompleted       = "Cannot assign a completed ticket"
	MsgPriorityCompleted     = "Cannot change priority of a completed ticket"
	MsgCommentEmpty          = "Comment cannot be empty"
	MsgCommentTooLong        = "Comment must be at most 2000 characters"
	MsgConcurrentUpdate      = "Ticket was modified by someone else, please retry"
	MsgTenantsOnly           = "Only tenants can submit tickets"
	MsgManagersOnly          = "Only managers can perform this action"
	MsgAttachmentNotFound    = "Attachment not found"
	MsgAttachmentsCompleted  = "Cannot modify attachments on a completed ticket"
	MsgNoFilesSelected       = "No files selected"
	MsgInvalidFileType       = "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed."
	MsgFileTooLarge          = "File too large. Maximum size is 5MB."
	MsgUploadTooLarge        = "Upload too large. Send at most 5 files of 5MB each."
	MsgFileContentMismatch   = "File content does not match its type. Upload rejected."
	MsgFileUnavailable       = "File not available"
)
