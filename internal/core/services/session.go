package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// Ensure ScanSession implements the interface.
var _ driving.ScanService = (*ScanSession)(nil)

// Error codes published with error events.
const (
	ErrCodeCapture  = "CAPTURE_FAILED"
	ErrCodeSettings = "SETTINGS_INVALID"
)

// ScanSession owns the scanning state of one screen: whether a scan is
// pending, which screen is bound, and where results go.
//
// A scan is one-shot. Start marks it pending and processes the screen at
// once when one is bound; ContentChanged processes the screen only while a
// scan is pending; every processed screen clears the pending flag.
type ScanSession struct {
	mu       sync.Mutex // guards screen and scanning
	screen   driven.Screen
	scanning bool

	processMu sync.Mutex // serialises ProcessScreen

	locator  driven.BlockLocator
	settings driving.SettingsService
	events   driven.EventPublisher
	history  driven.ScanStore
	now      func() time.Time
}

// NewScanSession creates a scan session. Events and history may be nil.
// A nil settings service uses the built-in defaults.
func NewScanSession(
	locator driven.BlockLocator,
	settings driving.SettingsService,
	events driven.EventPublisher,
	history driven.ScanStore,
) *ScanSession {
	return &ScanSession{
		locator:  locator,
		settings: settings,
		events:   events,
		history:  history,
		now:      time.Now,
	}
}

// Bind attaches the screen scans read from, replacing any previous one.
func (s *ScanSession) Bind(screen driven.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = screen
	if screen != nil {
		logger.Debug("screen bound: %s", screen.Name())
	}
}

// Unbind detaches the screen and cancels any pending scan.
func (s *ScanSession) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = nil
	s.scanning = false
}

// IsReady reports whether a screen is bound.
func (s *ScanSession) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen != nil
}

// Start marks a scan pending and processes the screen now if one is bound.
// Returns nil, nil when no screen is bound; the scan stays pending.
func (s *ScanSession) Start(ctx context.Context) (*domain.ScanRecord, error) {
	s.mu.Lock()
	s.scanning = true
	bound := s.screen != nil
	s.mu.Unlock()

	if !bound {
		logger.Debug("scan pending, no screen bound")
		return nil, nil
	}
	return s.ProcessScreen(ctx)
}

// Stop cancels the pending scan.
func (s *ScanSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = false
}

// IsScanning reports whether a scan is pending.
func (s *ScanSession) IsScanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Status returns a snapshot of the session state.
func (s *ScanSession) Status() driving.ScanStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return driving.ScanStatus{Scanning: s.scanning, Ready: s.screen != nil}
}

// ContentChanged processes the screen if a scan is pending.
func (s *ScanSession) ContentChanged(ctx context.Context) (*domain.ScanRecord, error) {
	if !s.IsScanning() {
		return nil, nil
	}
	return s.ProcessScreen(ctx)
}

// ProcessScreen captures the bound screen, extracts the ingredient block
// and publishes the result. The pending flag is always cleared.
func (s *ScanSession) ProcessScreen(ctx context.Context) (*domain.ScanRecord, error) {
	s.processMu.Lock()
	defer s.processMu.Unlock()
	defer s.Stop()

	logger.Section("Scan")

	s.mu.Lock()
	screen := s.screen
	s.mu.Unlock()

	if screen == nil {
		logger.Debug("no active screen available")
		return s.finish(ctx, "", domain.OutcomeNoContent, domain.StatusNoContent, "", 0), nil
	}

	captured, err := screen.Capture(ctx)
	if errors.Is(err, domain.ErrNoContent) {
		logger.Debug("screen %s has no content", screen.Name())
		return s.finish(ctx, screen.Name(), domain.OutcomeNoContent, domain.StatusNoContent, "", 0), nil
	}
	if err != nil {
		logger.Error("capturing %s: %v", screen.Name(), err)
		s.publishError(ErrCodeCapture, err.Error())
		return nil, fmt.Errorf("capture screen: %w", err)
	}

	settings, err := extractionSettings(s.settings)
	if err != nil {
		s.publishError(ErrCodeSettings, err.Error())
		return nil, fmt.Errorf("load settings: %w", err)
	}

	raw := captured.Text
	rawLength := domain.RuneLen(raw)
	logger.Debug("collected %d characters from %s", rawLength, screen.Name())
	logger.Debug("first 500 chars: %s", logger.Preview(raw, 500))

	block := s.locator.Locate(raw, settings)
	outcome, payload := Decide(block.Text, raw, settings)

	switch outcome {
	case domain.OutcomeBlock:
		logger.Debug("found ingredients after %q: %s", block.Anchor, logger.Preview(block.Text, 200))
	case domain.OutcomeRawFallback:
		logger.Debug("no anchor found, sending full text for analysis")
	default:
		logger.Debug("no ingredients found on this screen (collected %d chars)", rawLength)
	}

	return s.finish(ctx, screen.Name(), outcome, payload, block.Anchor, rawLength), nil
}

// finish publishes the outcome and records it in history.
func (s *ScanSession) finish(
	ctx context.Context,
	source string,
	outcome domain.ScanOutcome,
	payload, anchor string,
	rawLength int,
) *domain.ScanRecord {
	if s.events != nil {
		if outcome.Delivered() {
			s.events.PublishIngredientText(payload)
		} else {
			s.events.PublishStatus(payload)
		}
	}

	record := &domain.ScanRecord{
		ID:        uuid.New().String(),
		Source:    source,
		Outcome:   outcome,
		Text:      payload,
		RawLength: rawLength,
		CreatedAt: s.now(),
	}
	if outcome == domain.OutcomeBlock {
		record.Anchor = anchor
	}

	if s.history != nil {
		if err := s.history.Save(ctx, *record); err != nil {
			logger.Warn("saving scan record: %v", err)
		}
	}

	return record
}

func (s *ScanSession) publishError(code, message string) {
	if s.events != nil {
		s.events.PublishError(code, message)
	}
}
