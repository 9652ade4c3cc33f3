package models

import "errors"

// ErrorKind groups domain errors so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindIllegalState
	KindNotLoaded
)

type CustomError struct {
	Kind    ErrorKind
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// KindOf returns the kind of the first CustomError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

var (
	ErrEmptyName            = &CustomError{Kind: KindValidation, Message: "name must not be empty"}
	ErrInvalidQuantity      = &CustomError{Kind: KindValidation, Message: "quantity must be positive"}
	ErrInvalidPrice         = &CustomError{Kind: KindValidation, Message: "price must not be negative"}
	ErrNotEnoughStock       = &CustomError{Kind: KindIllegalState, Message: "not enough stock"}
	ErrAlreadyDelivered     = &CustomError{Kind: KindIllegalState, Message: "order already delivered, cannot cancel"}
	ErrAlreadyCancelled     = &CustomError{Kind: KindIllegalState, Message: "order already cancelled"}
	ErrAssociationNotLoaded = &CustomError{Kind: KindNotLoaded, Message: "association not loaded inside transaction"}
)
