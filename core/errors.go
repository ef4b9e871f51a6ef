package core

import (
	"errors"
	"log"
)

var (
	ErrInvalidPosition      = errors.New("invalid position")
	ErrInvalidMode          = errors.New("invalid mode")
	ErrNoFileName           = errors.New("no file name")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrEmptyClipboard       = errors.New("clipboard is empty")
)

type ErrorId int

const (
	ErrInvalidPositionId ErrorId = iota
	ErrInvalidModeId
	ErrNoFileNameId
	ErrFailedToSaveId
	ErrFailedToYankId
	ErrFailedToPasteId
	ErrNarrationFailedId
)

// Error pairs an error with the id consumers use to classify it.
type Error struct {
	id  ErrorId
	err error
}

// NewError tags err with id. Consumers outside core use it to report failures
// of the collaborators they run, such as writing the file.
func NewError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId { return e.id }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func (e *editor) DispatchError(id ErrorId, err error) {
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
