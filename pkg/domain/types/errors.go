package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrInvalidPayload   = goerr.New("invalid payload")
	ErrInvalidSignature = goerr.New("invalid signature")
	ErrValidationFailed = goerr.New("validation failed")
)
