package domain

import "errors"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("folder name is required")
	ErrInvalidDueDate   = errors.New("invalid due date")
	ErrInvalidReminder  = errors.New("invalid reminder time")
	ErrNoUpdateFields   = errors.New("no valid fields provided for update")
	ErrInvalidPageToken = errors.New("invalid pagination token")
	ErrTaskNotFound     = errors.New("task not found")
	ErrFolderNotFound   = errors.New("folder not found")
	// ErrDuplicateID is returned by stores when a conditional insert finds an existing row.
	ErrDuplicateID = errors.New("duplicate identifier")
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrUnauthenticated, KindUnauthenticated},
	{ErrInvalidPayload, KindValidation},
	{ErrTitleRequired, KindValidation},
	{ErrNameRequired, KindValidation},
	{ErrInvalidDueDate, KindValidation},
	{ErrInvalidReminder, KindValidation},
	{ErrNoUpdateFields, KindValidation},
	{ErrInvalidPageToken, KindValidation},
	{ErrTaskNotFound, KindNotFound},
	{ErrFolderNotFound, KindNotFound},
}

// KindOf classifies err. Unknown errors, ErrDuplicateID included, are internal.
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
