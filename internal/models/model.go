package models

import "fmt"

// ListingState is the lifecycle state of a vehicle listing.
type ListingState string

const (
	StateForSale       ListingState = "FOR_SALE"
	StateReserveNotMet ListingState = "RESERVE_NOT_MET"
	StateSold          ListingState = "SOLD" // terminal
)

// ParseListingState converts a wire string into a ListingState
func ParseListingState(s string) (ListingState, error) {
	switch ListingState(s) {
	case StateForSale, StateReserveNotMet, StateSold:
		return ListingState(s), nil
	default:
		return "", fmt.Errorf("unknown listing state %q", s)
	}
}

// Member represents a participant in the auction, keyed by an identifier such as an email
type Member struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Balance   int64  `json:"balance"`
}

// Vehicle represents an auctioned asset with a single owner at all times
type Vehicle struct {
	Owner string `json:"owner"` // key of the owning Member
}

// Offer represents a member's bid on a listing. Offers live only inside
// a listing's offer sequence and are never keyed separately.
type Offer struct {
	BidPrice int64  `json:"bidPrice"`
	Listing  string `json:"listing"` // key of the VehicleListing
	Member   string `json:"member"`  // key of the bidding Member
}

// VehicleListing represents a vehicle up for auction
type VehicleListing struct {
	ReservePrice int64        `json:"reservePrice"`
	Description  string       `json:"description"`
	State        ListingState `json:"listingState"`
	Offers       []Offer      `json:"offers"`  // insertion order, empty until first bid
	Vehicle      string       `json:"vehicle"` // key of the listed Vehicle
}
