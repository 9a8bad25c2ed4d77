package auctionerrors

import "errors"

// Record lookup errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrRecordNotFound  = errors.New("record not found")
)

// Business rule errors
var (
	ErrInsufficientBalance = errors.New("member balance is below the bid price")
	ErrSelfBid             = errors.New("member already owns the listed vehicle")
	ErrNoOffers            = errors.New("no offers exist on the listing")
	ErrBalanceOverflow     = errors.New("balance arithmetic would overflow")
)

// Invocation boundary errors
var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrArgumentCount   = errors.New("wrong number of arguments")
	ErrMalformedAmount = errors.New("malformed numeric input")
	ErrMalformedRecord = errors.New("malformed record")
)
