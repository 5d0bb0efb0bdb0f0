package domain

import "errors"

// Domain errors.
var (
	ErrUnknownPerson       = errors.New("person is neither the celebrant nor a guest")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrTaskIndexOutOfRange = errors.New("task number out of range")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidPersonRef    = errors.New("invalid person reference (use 'celebrant' or a guest number)")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyDescription    = errors.New("task description cannot be empty")
	ErrNoParty             = errors.New("no party yet (run 'party new' or 'party load <file>' first)")
	ErrPartyExists         = errors.New("a party already exists (use --force to replace it)")
	ErrDocumentNotFound    = errors.New("party document not found")
	ErrMalformedDocument   = errors.New("malformed party document")
	ErrCorruptSession      = errors.New("corrupt party session")
	ErrConfigExists        = errors.New("config file already exists")
)
