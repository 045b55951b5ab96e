package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoWinningBid    = errors.New("no winning bid recorded for auction")
)

// business logic errors
var (
	ErrInvalidBid       = errors.New("invalid bid")
	ErrAuctionClosed    = errors.New("auction has already closed")
	ErrAlreadyClosed    = errors.New("auction already transitioned to closed")
	ErrWinningBidExists = errors.New("winning bid already recorded for auction")
)
