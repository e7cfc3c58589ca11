package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID   = errors.New("failed to parse UUID")
	ErrUnknownUnit = errors.New("unknown quantity unit")
)
