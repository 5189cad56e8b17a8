// Package store persists the asset collection through one of three explicit
// strategies: local only, remote with local fallback, or remote only.
package store

import (
	"context"
	"fmt"

	"nexus-asset-manager/internal/config"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
)

type Mode string

const (
	ModeLocal    Mode = config.StoreModeLocal
	ModeFallback Mode = config.StoreModeFallback
	ModeStrict   Mode = config.StoreModeStrict
)

// Adapter is the record store contract shared by every strategy.
type Adapter interface {
	List(ctx context.Context) ([]domain.Asset, error)
	Upsert(ctx context.Context, asset domain.Asset) error
	Delete(ctx context.Context, id string) error
	Mode() Mode
	Close() error
}

// New builds the strategy selected by cfg. cfg must already be validated.
func New(ctx context.Context, cfg config.StoreConfig) (Adapter, error) {
	switch Mode(cfg.Mode) {
	case ModeLocal:
		return newLocalFromConfig(ctx, cfg)
	case ModeFallback:
		local, err := newLocalFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewFallbackStore(NewRemoteStore(cfg.RemoteURL, cfg.Token, nil), local), nil
	case ModeStrict:
		return NewStrictStore(NewRemoteStore(cfg.RemoteURL, cfg.Token, nil)), nil
	default:
		return nil, fmt.Errorf("unsupported store mode: %s", cfg.Mode)
	}
}

func newLocalFromConfig(ctx context.Context, cfg config.StoreConfig) (*LocalStore, error) {
	var kv KV
	switch cfg.Backend {
	case config.StoreBackendRedis:
		client, err := Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		kv = NewRedisKV(client)
	default:
		fileKV, err := NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		kv = fileKV
	}
	logger.Info("Local store ready", "backend", cfg.Backend, "namespace", cfg.Namespace)
	return NewLocalStore(kv, cfg.Namespace), nil
}

// FallbackStore tries the remote first and redirects any failed operation to
// the local store. Callers never see a remote failure.
type FallbackStore struct {
	remote *RemoteStore
	local  *LocalStore
}

func NewFallbackStore(remote *RemoteStore, local *LocalStore) *FallbackStore {
	return &FallbackStore{remote: remote, local: local}
}

func (s *FallbackStore) List(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.remote.List(ctx)
	if err == nil {
		return assets, nil
	}
	logger.WarnContext(ctx, "Remote API failed, using local store", "operation", "list", "error", err)
	return s.local.List(ctx)
}

func (s *FallbackStore) Upsert(ctx context.Context, asset domain.Asset) error {
	err := s.remote.Upsert(ctx, asset)
	if err == nil {
		return nil
	}
	logger.WarnContext(ctx, "Remote API failed, saving to local store", "asset_id", asset.ID, "error", err)
	return s.local.Upsert(ctx, asset)
}

func (s *FallbackStore) Delete(ctx context.Context, id string) error {
	err := s.remote.Delete(ctx, id)
	if err == nil {
		return nil
	}
	logger.WarnContext(ctx, "Remote API failed, deleting from local store", "asset_id", id, "error", err)
	return s.local.Delete(ctx, id)
}

func (s *FallbackStore) Mode() Mode { return ModeFallback }

func (s *FallbackStore) Close() error { return s.local.Close() }

// StrictStore uses only the remote and surfaces its failures.
type StrictStore struct {
	remote *RemoteStore
}

func NewStrictStore(remote *RemoteStore) *StrictStore {
	return &StrictStore{remote: remote}
}

func (s *StrictStore) List(ctx context.Context) ([]domain.Asset, error) {
	return s.remote.List(ctx)
}

func (s *StrictStore) Upsert(ctx context.Context, asset domain.Asset) error {
	return s.remote.Upsert(ctx, asset)
}

func (s *StrictStore) Delete(ctx context.Context, id string) error {
	return s.remote.Delete(ctx, id)
}

func (s *StrictStore) Mode() Mode { return ModeStrict }

func (s *StrictStore) Close() error { return nil }
