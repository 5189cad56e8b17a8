package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
)

// TeardownDelay separates releasing the camera from opening the matched record.
const TeardownDelay = 300 * time.Millisecond

// Camera produces decoded payloads until stopped.
type Camera interface {
	// Start begins delivering decoded payloads to onDecode. It may deliver
	// synchronously before returning.
	Start(ctx context.Context, onDecode func(text string)) error
	Stop() error
}

// SessionConfig wires a Session to its collaborators.
type SessionConfig struct {
	Camera Camera
	// Assets returns the collection to resolve against at decode time.
	Assets func() []domain.Asset
	// OnMatch receives the resolved asset after the camera has been released.
	OnMatch func(asset domain.Asset)
	// OnMiss reports a payload that matched nothing. Scanning continues.
	OnMiss func(text string, err error)
	// Delay overrides TeardownDelay.
	Delay *time.Duration
}

// Session is one scoped use of a camera. Close always releases it.
type Session struct {
	cfg   SessionConfig
	delay time.Duration

	mu      sync.Mutex
	started bool
	closed  bool
	matched bool
}

func NewSession(cfg SessionConfig) *Session {
	delay := TeardownDelay
	if cfg.Delay != nil {
		delay = *cfg.Delay
	}
	return &Session{cfg: cfg, delay: delay}
}

// Open acquires the camera. If it cannot be started the session is closed
// before the error is returned.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.started {
		s.mu.Unlock()
		return fmt.Errorf("scan session already used")
	}
	s.started = true
	s.mu.Unlock()

	if err := s.cfg.Camera.Start(ctx, func(text string) { s.handle(ctx, text) }); err != nil {
		s.Close()
		return fmt.Errorf("camera access denied or device not found: %w", err)
	}
	return nil
}

// Close stops the camera once. Later calls are no-ops.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.cfg.Camera.Stop(); err != nil {
		logger.Warn("Camera stop failed", "error", err)
		return err
	}
	return nil
}

// Matched reports whether a payload resolved during this session.
func (s *Session) Matched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matched
}

func (s *Session) handle(ctx context.Context, text string) {
	s.mu.Lock()
	if s.closed || s.matched {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	var assets []domain.Asset
	if s.cfg.Assets != nil {
		assets = s.cfg.Assets()
	}
	asset, err := Resolve(text, assets)
	if err != nil {
		logger.InfoContext(ctx, "Scanned code did not match an asset", "code", text)
		if s.cfg.OnMiss != nil {
			s.cfg.OnMiss(text, err)
		}
		return
	}

	s.mu.Lock()
	if s.matched {
		s.mu.Unlock()
		return
	}
	s.matched = true
	s.mu.Unlock()

	s.Close()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
	if s.cfg.OnMatch != nil {
		s.cfg.OnMatch(asset)
	}
}
