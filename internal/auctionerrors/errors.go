package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrCropNotFound = errors.New("crop not found")
)

// business logic errors
var (
	ErrInvalidInput  = errors.New("missing or invalid required field")
	ErrAuctionClosed = errors.New("auction is closed")
	ErrBidTooLow     = errors.New("bid amount too low")
)
