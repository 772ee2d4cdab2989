package approval

import "errors"

var (
	ErrRequestNotFound        = errors.New("request not found")
	ErrRequestAlreadyReviewed = errors.New("request has already been approved or rejected")
	ErrUnknownKind            = errors.New("unknown request kind")
)
