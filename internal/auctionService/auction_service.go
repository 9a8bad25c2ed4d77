package auction

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"
	"vehicle-auction/internal/repository"
)

// Seed records written by InitLedger.
const (
	SeedMemberA = "memberA@acme.org"
	SeedMemberB = "memberB@acme.org"
	SeedMemberC = "memberC@acme.org"
	SeedVehicle = "vehicle1"
	SeedListing = "listing1"

	seedBalance = 5000
	seedReserve = 3500
)

// SettlementResult reports the outcome of closing the bidding on a listing
type SettlementResult struct {
	ListingKey string             `json:"listing"`
	State      model.ListingState `json:"listingState"`
	Winner     model.Offer        `json:"winningOffer"`
	Sold       bool               `json:"sold"`
}

// AuctionService defines the business logic for offer submission and
// auction settlement. Every read and write goes through the entity
// repository; nothing is cached across invocations.
type AuctionService struct {
	repo repository.LedgerStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.LedgerStore) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// MakeOffer validates a bid and appends it to the listing's offer
// sequence. Only the listing record is written.
func (s *AuctionService) MakeOffer(bidPrice int64, listingKey, memberKey string) (model.Offer, error) {
	listing, err := s.repo.GetListing(listingKey)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: make offer on %s: %w", listingKey, err)
	}

	vehicle, err := s.repo.GetVehicle(listing.Vehicle)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: make offer on %s: %w", listingKey, err)
	}

	member, err := s.repo.GetMember(memberKey)
	if err != nil {
		return model.Offer{}, fmt.Errorf("service: make offer on %s: %w", listingKey, err)
	}

	// Balance is checked here, not again at close.
	if member.Balance < bidPrice {
		return model.Offer{}, fmt.Errorf("service: member %s has balance %d against bid %d: %w",
			memberKey, member.Balance, bidPrice, auctionerrors.ErrInsufficientBalance)
	}

	if memberKey == vehicle.Owner {
		return model.Offer{}, fmt.Errorf("service: member %s owns vehicle %s: %w",
			memberKey, listing.Vehicle, auctionerrors.ErrSelfBid)
	}

	offer := model.Offer{
		BidPrice: bidPrice,
		Listing:  listingKey,
		Member:   memberKey,
	}

	if listing.Offers == nil {
		listing.Offers = []model.Offer{}
	}
	listing.Offers = append(listing.Offers, offer)

	if err := s.repo.PutListing(listingKey, listing); err != nil {
		return model.Offer{}, fmt.Errorf("service: failed to record offer on %s by %s: %w", listingKey, memberKey, err)
	}

	return offer, nil
}

// CloseBidding settles the auction on a listing: it selects the highest
// offer, applies the reserve-price rule, and on a sale moves the bid
// amount from buyer to seller and reassigns vehicle ownership, all in
// one ledger batch. With no offers the call fails and nothing is
// persisted, including the tentative RESERVE_NOT_MET state.
func (s *AuctionService) CloseBidding(listingKey string) (SettlementResult, error) {
	listing, err := s.repo.GetListing(listingKey)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("service: close bidding on %s: %w", listingKey, err)
	}

	listing.State = model.StateReserveNotMet

	if len(listing.Offers) == 0 {
		return SettlementResult{}, fmt.Errorf("service: close bidding on %s: %w", listingKey, auctionerrors.ErrNoOffers)
	}

	// Stable sort keeps arrival order among equal bids, so the
	// earliest-submitted top bid wins ties.
	sort.SliceStable(listing.Offers, func(i, j int) bool {
		return listing.Offers[i].BidPrice > listing.Offers[j].BidPrice
	})
	winner := listing.Offers[0]

	if winner.BidPrice < listing.ReservePrice {
		if err := s.repo.PutListing(listingKey, listing); err != nil {
			return SettlementResult{}, fmt.Errorf("service: close bidding on %s: %w", listingKey, err)
		}
		return SettlementResult{
			ListingKey: listingKey,
			State:      model.StateReserveNotMet,
			Winner:     winner,
			Sold:       false,
		}, nil
	}

	updates, err := s.settle(listingKey, listing, winner)
	if err != nil {
		return SettlementResult{}, fmt.Errorf("service: close bidding on %s: %w", listingKey, err)
	}

	if err := s.repo.Apply(updates); err != nil {
		return SettlementResult{}, fmt.Errorf("service: close bidding on %s: %w", listingKey, err)
	}

	return SettlementResult{
		ListingKey: listingKey,
		State:      model.StateSold,
		Winner:     winner,
		Sold:       true,
	}, nil
}

// settle computes the full record set for a sale: buyer debited, seller
// credited, ownership transferred, listing closed. No writes happen here.
func (s *AuctionService) settle(listingKey string, listing model.VehicleListing, winner model.Offer) (*repository.Updates, error) {
	buyer, err := s.repo.GetMember(winner.Member)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.GetVehicle(listing.Vehicle)
	if err != nil {
		return nil, err
	}

	seller, err := s.repo.GetMember(vehicle.Owner)
	if err != nil {
		return nil, err
	}

	updates := repository.NewUpdates()

	// Ownership can change between submission and close. If the winner
	// now owns the vehicle, buyer and seller are the same record and no
	// balance moves; a debit-then-credit through two loaded copies would
	// mint money.
	if winner.Member != vehicle.Owner {
		if seller.Balance > math.MaxInt64-winner.BidPrice {
			return nil, fmt.Errorf("crediting %s with %d: %w", vehicle.Owner, winner.BidPrice, auctionerrors.ErrBalanceOverflow)
		}
		buyer.Balance -= winner.BidPrice
		seller.Balance += winner.BidPrice
		updates.Members[winner.Member] = buyer
		updates.Members[vehicle.Owner] = seller
	} else {
		updates.Members[winner.Member] = buyer
	}

	vehicle.Owner = winner.Member
	updates.Vehicles[listing.Vehicle] = vehicle

	listing.Offers = []model.Offer{}
	listing.State = model.StateSold
	updates.Listings[listingKey] = listing

	return updates, nil
}

// CreateMember constructs and stores a member record. No invariants are
// enforced beyond serialization.
func (s *AuctionService) CreateMember(key, firstName, lastName string, balance int64) (model.Member, error) {
	member := model.Member{
		FirstName: firstName,
		LastName:  lastName,
		Balance:   balance,
	}
	if err := s.repo.PutMember(key, member); err != nil {
		return model.Member{}, fmt.Errorf("service: create member %s: %w", key, err)
	}
	return member, nil
}

// CreateVehicle constructs and stores a vehicle record
func (s *AuctionService) CreateVehicle(key, ownerKey string) (model.Vehicle, error) {
	vehicle := model.Vehicle{
		Owner: ownerKey,
	}
	if err := s.repo.PutVehicle(key, vehicle); err != nil {
		return model.Vehicle{}, fmt.Errorf("service: create vehicle %s: %w", key, err)
	}
	return vehicle, nil
}

// CreateListing constructs and stores a vehicle listing record
func (s *AuctionService) CreateListing(key string, reservePrice int64, description string, state model.ListingState, offers []model.Offer, vehicleKey string) (model.VehicleListing, error) {
	listing := model.VehicleListing{
		ReservePrice: reservePrice,
		Description:  description,
		State:        state,
		Offers:       offers,
		Vehicle:      vehicleKey,
	}
	if err := s.repo.PutListing(key, listing); err != nil {
		return model.VehicleListing{}, fmt.Errorf("service: create listing %s: %w", key, err)
	}
	return listing, nil
}

// Query returns the raw serialized record stored under key
func (s *AuctionService) Query(key string) (json.RawMessage, error) {
	record, err := s.repo.GetRecord(key)
	if err != nil {
		return nil, fmt.Errorf("service: query %s: %w", key, err)
	}
	return record, nil
}

// InitLedger seeds three members, one vehicle owned by the first member,
// and one listing for that vehicle.
func (s *AuctionService) InitLedger() error {
	members := []struct {
		key       string
		firstName string
		lastName  string
	}{
		{SeedMemberA, "Amy", "Williams"},
		{SeedMemberB, "Billy", "Thompson"},
		{SeedMemberC, "Charlie", "Evans"},
	}

	for _, m := range members {
		if _, err := s.CreateMember(m.key, m.firstName, m.lastName, seedBalance); err != nil {
			return fmt.Errorf("service: init ledger: %w", err)
		}
	}

	if _, err := s.CreateVehicle(SeedVehicle, SeedMemberA); err != nil {
		return fmt.Errorf("service: init ledger: %w", err)
	}

	if _, err := s.CreateListing(SeedListing, seedReserve, "2018 Arium Nova", model.StateForSale, nil, SeedVehicle); err != nil {
		return fmt.Errorf("service: init ledger: %w", err)
	}

	return nil
}
