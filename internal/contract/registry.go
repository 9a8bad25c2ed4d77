package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	auction "vehicle-auction/internal/auctionService"
	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"
)

// Operation names exposed by the invocation surface.
const (
	OpInitLedger           = "initLedger"
	OpQuery                = "query"
	OpCreateVehicle        = "createVehicle"
	OpCreateVehicleListing = "createVehicleListing"
	OpCreateMember         = "createMember"
	OpMakeOffer            = "makeOffer"
	OpCloseBidding         = "closeBidding"
)

// operation pairs a handler with its fixed argument arity.
type operation struct {
	arity   int
	handler func(args []string) (any, error)
}

// Registry routes a named operation with string arguments to a typed
// handler. Arity is fixed per operation by the adapter the handler is
// registered through; numeric arguments are parsed here, before any
// ledger access.
type Registry struct {
	ops map[string]operation
}

// NewRegistry builds the operation table for the auction service
func NewRegistry(svc *auction.AuctionService) *Registry {
	r := &Registry{ops: make(map[string]operation)}

	r.ops[OpInitLedger] = op0(func() (any, error) {
		if err := svc.InitLedger(); err != nil {
			return nil, err
		}
		return "ledger initialized", nil
	})

	r.ops[OpQuery] = op1(func(key string) (any, error) {
		return svc.Query(key)
	})

	r.ops[OpCreateVehicle] = op2(func(vehicleKey, ownerKey string) (any, error) {
		return svc.CreateVehicle(vehicleKey, ownerKey)
	})

	r.ops[OpCreateVehicleListing] = op6(func(listingKey, reservePrice, description, listingState, offers, vehicleKey string) (any, error) {
		reserve, err := parseAmount(reservePrice)
		if err != nil {
			return nil, err
		}
		state, err := parseListingState(listingState)
		if err != nil {
			return nil, err
		}
		offerSeq, err := parseOffers(offers)
		if err != nil {
			return nil, err
		}
		return svc.CreateListing(listingKey, reserve, description, state, offerSeq, vehicleKey)
	})

	r.ops[OpCreateMember] = op4(func(memberKey, firstName, lastName, balance string) (any, error) {
		amount, err := parseAmount(balance)
		if err != nil {
			return nil, err
		}
		return svc.CreateMember(memberKey, firstName, lastName, amount)
	})

	r.ops[OpMakeOffer] = op3(func(bidPrice, listingKey, memberKey string) (any, error) {
		price, err := parseAmount(bidPrice)
		if err != nil {
			return nil, err
		}
		return svc.MakeOffer(price, listingKey, memberKey)
	})

	r.ops[OpCloseBidding] = op1(func(listingKey string) (any, error) {
		return svc.CloseBidding(listingKey)
	})

	return r
}

// Invoke dispatches a named operation. An unknown name or an argument
// count other than the operation's fixed arity fails before the handler
// runs.
func (r *Registry) Invoke(fn string, args []string) (any, error) {
	op, ok := r.ops[fn]
	if !ok {
		return nil, fmt.Errorf("contract: %q: %w", fn, auctionerrors.ErrUnknownFunction)
	}
	if len(args) != op.arity {
		return nil, fmt.Errorf("contract: %s expects %d arguments, got %d: %w",
			fn, op.arity, len(args), auctionerrors.ErrArgumentCount)
	}
	return op.handler(args)
}

// Operations returns the registered operation names, for diagnostics
func (r *Registry) Operations() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	return names
}

// The opN adapters fix argument arity at compile time: a handler with
// the wrong signature does not register.

func op0(f func() (any, error)) operation {
	return operation{arity: 0, handler: func(args []string) (any, error) {
		return f()
	}}
}

func op1(f func(a string) (any, error)) operation {
	return operation{arity: 1, handler: func(args []string) (any, error) {
		return f(args[0])
	}}
}

func op2(f func(a, b string) (any, error)) operation {
	return operation{arity: 2, handler: func(args []string) (any, error) {
		return f(args[0], args[1])
	}}
}

func op3(f func(a, b, c string) (any, error)) operation {
	return operation{arity: 3, handler: func(args []string) (any, error) {
		return f(args[0], args[1], args[2])
	}}
}

func op4(f func(a, b, c, d string) (any, error)) operation {
	return operation{arity: 4, handler: func(args []string) (any, error) {
		return f(args[0], args[1], args[2], args[3])
	}}
}

func op6(f func(a, b, c, d, e, g string) (any, error)) operation {
	return operation{arity: 6, handler: func(args []string) (any, error) {
		return f(args[0], args[1], args[2], args[3], args[4], args[5])
	}}
}

// parseAmount converts a wire numeric string into an exact int64
func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("contract: %q is not an integer: %w", s, auctionerrors.ErrMalformedAmount)
	}
	return n, nil
}

func parseListingState(s string) (model.ListingState, error) {
	state, err := model.ParseListingState(s)
	if err != nil {
		return "", fmt.Errorf("contract: %v: %w", err, auctionerrors.ErrMalformedRecord)
	}
	return state, nil
}

// parseOffers decodes the optional offers argument of
// createVehicleListing. Empty means no offers yet; anything else must
// be a JSON array of offers.
func parseOffers(s string) ([]model.Offer, error) {
	if s == "" {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.DisallowUnknownFields()
	var offers []model.Offer
	if err := dec.Decode(&offers); err != nil {
		return nil, fmt.Errorf("contract: decode offers: %v: %w", err, auctionerrors.ErrMalformedRecord)
	}
	return offers, nil
}
