package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/internal/ledger"
	model "vehicle-auction/internal/models"
)

// Updates is a set of record writes applied to the ledger as one unit.
// Keys within one kind are unique; the same key must not appear under
// two kinds.
type Updates struct {
	Members  map[string]model.Member
	Vehicles map[string]model.Vehicle
	Listings map[string]model.VehicleListing
}

// NewUpdates creates an empty update set
func NewUpdates() *Updates {
	return &Updates{
		Members:  make(map[string]model.Member),
		Vehicles: make(map[string]model.Vehicle),
		Listings: make(map[string]model.VehicleListing),
	}
}

// LedgerStore defines typed entity access over the ledger for the auction system
type LedgerStore interface {
	GetMember(key string) (model.Member, error)
	GetVehicle(key string) (model.Vehicle, error)
	GetListing(key string) (model.VehicleListing, error)
	GetRecord(key string) (json.RawMessage, error)
	PutMember(key string, m model.Member) error
	PutVehicle(key string, v model.Vehicle) error
	PutListing(key string, l model.VehicleListing) error
	Apply(u *Updates) error
}

// EntityRepo implements LedgerStore on top of a StateStore. It only
// (de)serializes; business rules live in the auction service.
type EntityRepo struct {
	store ledger.StateStore
}

// NewEntityRepo creates a new entity repository over the given ledger
func NewEntityRepo(store ledger.StateStore) *EntityRepo {
	return &EntityRepo{store: store}
}

// GetMember loads and decodes the member stored under key
func (r *EntityRepo) GetMember(key string) (model.Member, error) {
	var m model.Member
	if err := r.getRecord(key, &m, auctionerrors.ErrMemberNotFound); err != nil {
		return model.Member{}, err
	}
	return m, nil
}

// GetVehicle loads and decodes the vehicle stored under key
func (r *EntityRepo) GetVehicle(key string) (model.Vehicle, error) {
	var v model.Vehicle
	if err := r.getRecord(key, &v, auctionerrors.ErrVehicleNotFound); err != nil {
		return model.Vehicle{}, err
	}
	if v.Owner == "" {
		return model.Vehicle{}, fmt.Errorf("vehicle %s has no owner: %w", key, auctionerrors.ErrMalformedRecord)
	}
	return v, nil
}

// GetListing loads and decodes the vehicle listing stored under key
func (r *EntityRepo) GetListing(key string) (model.VehicleListing, error) {
	var l model.VehicleListing
	if err := r.getRecord(key, &l, auctionerrors.ErrListingNotFound); err != nil {
		return model.VehicleListing{}, err
	}
	if l.Vehicle == "" {
		return model.VehicleListing{}, fmt.Errorf("listing %s has no vehicle reference: %w", key, auctionerrors.ErrMalformedRecord)
	}
	if _, err := model.ParseListingState(string(l.State)); err != nil {
		return model.VehicleListing{}, fmt.Errorf("listing %s: %v: %w", key, err, auctionerrors.ErrMalformedRecord)
	}
	return l, nil
}

// GetRecord returns the raw serialized record under key, for queries
func (r *EntityRepo) GetRecord(key string) (json.RawMessage, error) {
	data, err := r.store.GetState(key)
	if err != nil {
		if errors.Is(err, ledger.ErrKeyNotFound) {
			return nil, fmt.Errorf("repository: query %s: %w", key, auctionerrors.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("repository: query %s: %w", key, err)
	}
	return json.RawMessage(data), nil
}

// PutMember serializes and stores a member under key
func (r *EntityRepo) PutMember(key string, m model.Member) error {
	return r.putRecord(key, m)
}

// PutVehicle serializes and stores a vehicle under key
func (r *EntityRepo) PutVehicle(key string, v model.Vehicle) error {
	return r.putRecord(key, v)
}

// PutListing serializes and stores a vehicle listing under key
func (r *EntityRepo) PutListing(key string, l model.VehicleListing) error {
	return r.putRecord(key, l)
}

// Apply serializes every record in the update set and commits them to
// the ledger as a single batch.
func (r *EntityRepo) Apply(u *Updates) error {
	writes := make([]ledger.Write, 0, len(u.Members)+len(u.Vehicles)+len(u.Listings))

	for key, m := range u.Members {
		w, err := marshalWrite(key, m)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}
	for key, v := range u.Vehicles {
		w, err := marshalWrite(key, v)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}
	for key, l := range u.Listings {
		w, err := marshalWrite(key, l)
		if err != nil {
			return err
		}
		writes = append(writes, w)
	}

	if err := r.store.PutBatch(writes); err != nil {
		return fmt.Errorf("repository: apply batch of %d writes: %w", len(writes), err)
	}
	return nil
}

func (r *EntityRepo) getRecord(key string, out any, notFound error) error {
	data, err := r.store.GetState(key)
	if err != nil {
		if errors.Is(err, ledger.ErrKeyNotFound) {
			return fmt.Errorf("repository: %s: %w", key, notFound)
		}
		return fmt.Errorf("repository: get %s: %w", key, err)
	}
	if err := decodeStrict(data, out); err != nil {
		return fmt.Errorf("repository: decode %s: %v: %w", key, err, auctionerrors.ErrMalformedRecord)
	}
	return nil
}

func (r *EntityRepo) putRecord(key string, record any) error {
	w, err := marshalWrite(key, record)
	if err != nil {
		return err
	}
	if err := r.store.PutState(w.Key, w.Value); err != nil {
		return fmt.Errorf("repository: put %s: %w", key, err)
	}
	return nil
}

func marshalWrite(key string, record any) (ledger.Write, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return ledger.Write{}, fmt.Errorf("repository: marshal %s: %w", key, err)
	}
	return ledger.Write{Key: key, Value: data}, nil
}

// decodeStrict rejects records carrying fields the target type does not
// declare, so a key holding one record kind cannot silently decode as
// another.
func decodeStrict(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}
