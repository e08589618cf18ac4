package domain

import "errors"

// Domain errors.
var (
	ErrPersistenceReadCorrupt  = errors.New("persisted snapshot is corrupt")
	ErrPersistenceWriteFailure = errors.New("persisted snapshot write failed")
	ErrInvalidSnapshot         = errors.New("invalid snapshot")
	ErrUnsupportedSchema       = errors.New("unsupported snapshot schema")
	ErrInvalidField            = errors.New("invalid field")
	ErrInvalidCategory         = errors.New("invalid category")
	ErrInvalidView             = errors.New("invalid view")
	ErrInvalidMessageKind      = errors.New("invalid message kind")
	ErrIdeaNotFound            = errors.New("idea not found")
	ErrLogNotFound             = errors.New("log entry not found")
	ErrNotLoaded               = errors.New("store not loaded")
	ErrNoMailTarget            = errors.New("no mail recipient configured (set [mail] to)")
	ErrConfigExists            = errors.New("config file already exists")
	ErrNotConfirmed            = errors.New("operation not confirmed")
)
