package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"nexus-asset-manager/internal/domain"
)

// LocalStore keeps the whole collection as one JSON array under a single key.
// Every mutation is a read-modify-write of that array.
type LocalStore struct {
	kv  KV
	key string
	mu  sync.Mutex
}

func NewLocalStore(kv KV, key string) *LocalStore {
	return &LocalStore{kv: kv, key: key}
}

// List returns the stored collection. A namespace that was never written is
// seeded with the sample inventory.
func (s *LocalStore) List(ctx context.Context) ([]domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Upsert replaces a record with the same id in place, otherwise prepends it.
func (s *LocalStore) Upsert(ctx context.Context, asset domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assets, err := s.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range assets {
		if assets[i].ID == asset.ID {
			assets[i] = asset
			replaced = true
			break
		}
	}
	if !replaced {
		assets = append([]domain.Asset{asset}, assets...)
	}
	return s.save(ctx, assets)
}

// Delete removes every record with id. Deleting a missing id is not an error.
func (s *LocalStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assets, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := assets[:0]
	for _, a := range assets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return s.save(ctx, kept)
}

func (s *LocalStore) Mode() Mode { return ModeLocal }

func (s *LocalStore) Close() error { return s.kv.Close() }

func (s *LocalStore) load(ctx context.Context) ([]domain.Asset, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}
	if !ok {
		seed := domain.SampleAssets()
		if err := s.save(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	var assets []domain.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode local store: %w", err)
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

func (s *LocalStore) save(ctx context.Context, assets []domain.Asset) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}
	return nil
}
