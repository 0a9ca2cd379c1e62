package apierrors

const (
	MsgUnauthorized       = "unauthorized"
	MsgInvalidPayload     = "invalidPayload"
	MsgTitleRequired      = "titleRequired"
	MsgFolderNameRequired = "folderNameRequired"
	MsgInvalidDueDate     = "invalidDueDate"
	MsgInvalidReminder    = "invalidReminder"
	MsgNoUpdateFields     = "noUpdateFields"
	MsgInvalidPageToken   = "invalidPageToken"
	MsgTaskNotFound       = "taskNotFound"
	MsgFolderNotFound     = "folderNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailListTask       = "errorListTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailCreateFolder   = "failCreateFolder"
	MsgFailGetFolder      = "failGetFolder"
	MsgFailListFolders    = "failListFolders"
	MsgFailUpdateFolder   = "failUpdateFolder"
	MsgFailDeleteFolder   = "failDeleteFolder"
	MsgTaskDeleted        = "taskDeleted"
	MsgFolderDeleted      = "folderDeleted"
)
