// Package form manages the create/edit draft of a single asset record.
package form

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/utils"
)

type State int

const (
	Closed State = iota
	OpenNew
	OpenEdit
)

func (s State) String() string {
	switch s {
	case OpenNew:
		return "open-new"
	case OpenEdit:
		return "open-edit"
	default:
		return "closed"
	}
}

const maxIDAttempts = 20

var (
	ErrNotOpen       = errors.New("form is not open")
	ErrIDImmutable   = errors.New("id cannot be changed while editing")
	ErrIncomplete    = errors.New("name and id are required")
	ErrIDUnavailable = errors.New("could not generate an unused asset id")
)

// IDGenerator mints candidate asset ids.
type IDGenerator interface {
	NextID() string
}

// RandomIDGenerator produces AST- followed by six random digits.
type RandomIDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (g *RandomIDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("AST-%d", 100000+g.rng.IntN(900000))
}

// Saver persists a submitted asset.
type Saver interface {
	Upsert(ctx context.Context, asset domain.Asset) error
}

// IDSet holds ids already present in the collection.
type IDSet map[string]struct{}

// IDsOf collects the ids of assets.
func IDsOf(assets []domain.Asset) IDSet {
	set := make(IDSet, len(assets))
	for _, a := range assets {
		set[a.ID] = struct{}{}
	}
	return set
}

func (s IDSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// Controller is the Closed -> OpenNew | OpenEdit -> Closed state machine.
// It is not safe for concurrent use.
type Controller struct {
	ids   IDGenerator
	state State
	draft domain.Asset
}

func NewController(ids IDGenerator) *Controller {
	return &Controller{ids: ids}
}

func (c *Controller) State() State { return c.state }

// Draft returns a copy of the in-progress record.
func (c *Controller) Draft() domain.Asset { return c.draft }

func (c *Controller) IsNew() bool { return c.state == OpenNew }

// OpenNew starts a new record with a fresh id not present in taken.
func (c *Controller) OpenNew(now time.Time, taken IDSet) error {
	id, err := c.freshID(taken)
	if err != nil {
		return err
	}
	c.state = OpenNew
	c.draft = domain.Asset{
		ID:           id,
		Type:         domain.AssetTypeLaptop,
		Status:       domain.AssetStatusAvailable,
		PurchaseDate: utils.Today(now),
		BillingCycle: domain.BillingCycleOneTime,
	}
	return nil
}

// OpenNewSubscription starts a new record preset as an active yearly subscription.
func (c *Controller) OpenNewSubscription(now time.Time, taken IDSet) error {
	if err := c.OpenNew(now, taken); err != nil {
		return err
	}
	c.draft.Type = domain.AssetTypeSubscription
	c.draft.Status = domain.AssetStatusActive
	c.draft.BillingCycle = domain.BillingCycleYearly
	return nil
}

// OpenEdit loads an existing record. Its id stays fixed until Close.
func (c *Controller) OpenEdit(asset domain.Asset) {
	c.state = OpenEdit
	c.draft = asset
}

func (c *Controller) Close() {
	c.state = Closed
	c.draft = domain.Asset{}
}

// RegenerateID replaces the id of a new record.
func (c *Controller) RegenerateID(taken IDSet) error {
	if c.state != OpenNew {
		return ErrIDImmutable
	}
	id, err := c.freshID(taken)
	if err != nil {
		return err
	}
	c.draft.ID = id
	return nil
}

// SetID accepts a typed or scanned tag, upper-cased.
func (c *Controller) SetID(id string) error {
	switch c.state {
	case Closed:
		return ErrNotOpen
	case OpenEdit:
		return ErrIDImmutable
	}
	c.draft.ID = strings.ToUpper(strings.TrimSpace(id))
	return nil
}

// SetType changes the type. On new records a switch between subscription-like
// and other types also moves status and billing cycle off their defaults.
func (c *Controller) SetType(t domain.AssetType) {
	c.draft.Type = t
	if c.state != OpenNew {
		return
	}
	switch {
	case t.IsSubscriptionLike() && c.draft.Status == domain.AssetStatusAvailable:
		c.draft.Status = domain.AssetStatusActive
		c.draft.BillingCycle = domain.BillingCycleYearly
	case !t.IsSubscriptionLike() && c.draft.Status == domain.AssetStatusActive:
		c.draft.Status = domain.AssetStatusAvailable
		c.draft.BillingCycle = domain.BillingCycleOneTime
	}
}

func (c *Controller) SetName(v string) { c.draft.Name = v }
func (c *Controller) SetModel(v string) { c.draft.Model = v }
func (c *Controller) SetSerialNumber(v string) { c.draft.SerialNumber = v }
func (c *Controller) SetStatus(v domain.AssetStatus) { c.draft.Status = v }
func (c *Controller) SetPurchaseDate(v string) { c.draft.PurchaseDate = v }
func (c *Controller) SetAssignedTo(v string) { c.draft.AssignedTo = v }
func (c *Controller) SetNotes(v string) { c.draft.Notes = v }
func (c *Controller) SetRenewalDate(v string) { c.draft.RenewalDate = v }
func (c *Controller) SetBillingCycle(v domain.BillingCycle) { c.draft.BillingCycle = v }

func (c *Controller) SetPrice(v float64) error {
	if v < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	c.draft.Price = v
	return nil
}

// Submit hands the draft to saver and closes the form on success. On any
// failure the form stays open with the draft intact.
func (c *Controller) Submit(ctx context.Context, saver Saver) (domain.Asset, error) {
	if c.state == Closed {
		return domain.Asset{}, ErrNotOpen
	}
	if strings.TrimSpace(c.draft.Name) == "" || strings.TrimSpace(c.draft.ID) == "" {
		return domain.Asset{}, ErrIncomplete
	}
	asset := c.draft
	if err := asset.Validate(); err != nil {
		return domain.Asset{}, err
	}
	if err := saver.Upsert(ctx, asset); err != nil {
		return domain.Asset{}, fmt.Errorf("failed to save asset %s: %w", asset.ID, err)
	}
	c.Close()
	return asset, nil
}

func (c *Controller) freshID(taken IDSet) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := c.ids.NextID()
		if !taken.has(id) {
			return id, nil
		}
	}
	return "", ErrIDUnavailable
}
