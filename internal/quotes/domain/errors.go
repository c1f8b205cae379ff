package domain

import "errors"

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidFilename = errors.New("invalid quote filename")
)
