// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/PatiFroNati/shot-plot-app/internal/adapters/repository"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/scoring"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/shotlog"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
	"github.com/PatiFroNati/shot-plot-app/pkg/logger"
	"github.com/PatiFroNati/shot-plot-app/pkg/metrics"
)

// labelSuppressedRings is the number of innermost rings drawn without a
// label. On ISSF paper targets the 9 and 10 rings carry no printed number.
const labelSuppressedRings = 2

// Service owns the catalog, the scoring engine, and the session store.
// All shot log mutations go through it; there are no ambient globals.
type Service struct {
	// mu serializes session mutations. Reads of a session's log happen
	// under the same lock because logs are not internally synchronized.
	mu sync.Mutex

	// Core components
	catalog  *catalog.Catalog
	engine   *scoring.Engine
	sessions repository.Store

	// Configuration
	catalogPath  string
	canvasSizePX float64
	maxSessions  int
	sessionTTL   time.Duration

	// State
	started bool
	store   *repository.MemStore

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalogPath points the service at an external target spec document.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithCanvasSize sets the square canvas edge in pixels.
func WithCanvasSize(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.canvasSizePX = float64(px)
		}
	}
}

// WithMaxSessions bounds the session store.
func WithMaxSessions(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithSessionTTL sets the idle lifetime of sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		canvasSizePX: 800,
		maxSessions:  1024,
		sessionTTL:   4 * time.Hour,
		logger:       nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the catalog and initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting shot plotter service...")

	cat, err := catalog.Load(ctx, s.catalogPath)
	if err != nil {
		return err
	}
	s.catalog = cat
	metrics.UpdateCatalogTargets(cat.Len())

	s.engine = scoring.NewEngine()
	s.store = repository.NewMemStore(ctx,
		repository.WithMaxSessions(s.maxSessions),
		repository.WithTTL(s.sessionTTL),
	)
	s.sessions = s.store

	s.started = true
	s.logger.Info(ctx, "shot plotter service started",
		logger.Int("targets", cat.Len()),
		logger.Float64("canvasSizePx", s.canvasSizePX),
		logger.Int("maxSessions", s.maxSessions),
		logger.Duration("sessionTTL", s.sessionTTL),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.store != nil {
		_ = s.store.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "shot plotter service stopped")
}

// Targets returns catalog summaries in document order.
func (s *Service) Targets(_ context.Context) []types.TargetSummary {
	names := s.catalog.Names()
	out := make([]types.TargetSummary, 0, len(names))
	for _, name := range names {
		t, err := s.catalog.Lookup(name)
		if err != nil {
			continue
		}
		out = append(out, types.TargetSummary{
			Name:          t.Name,
			RingCount:     len(t.Rings),
			MaxDiameterMM: t.MaxDiameterMM(),
		})
	}
	return out
}

// CreateSession opens a session bound to the named target.
func (s *Service) CreateSession(ctx context.Context, targetName string) (types.SessionState, error) {
	t, err := s.catalog.Lookup(targetName)
	if err != nil {
		return types.SessionState{}, err
	}

	// Derive geometry up front so a bad ring set aborts session setup
	// instead of failing on the first click.
	if _, err := s.engine.GeometryFor(t.Name, s.canvasSizePX, t.Rings); err != nil {
		return types.SessionState{}, err
	}

	now := time.Now()
	sess := &repository.Session{
		ID:         uuid.NewString(),
		TargetName: t.Name,
		CreatedAt:  now,
		LastSeen:   now,
		Log:        shotlog.New(t.Name),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sessions.Put(ctx, sess); err != nil {
		return types.SessionState{}, err
	}
	metrics.RecordSessionCreated()

	s.logger.Debug(ctx, "session created",
		logger.String("sessionID", sess.ID),
		logger.String("target", sess.TargetName),
	)
	return s.state(sess), nil
}

// Session returns the current state snapshot for a session.
func (s *Service) Session(ctx context.Context, sessionID string) (types.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return types.SessionState{}, err
	}
	return s.state(sess), nil
}

// SelectTarget switches a session to another target. When the target
// actually changes the shot log is cleared: scores under a different ring
// set are not comparable.
func (s *Service) SelectTarget(ctx context.Context, sessionID, targetName string) (types.SessionState, error) {
	t, err := s.catalog.Lookup(targetName)
	if err != nil {
		return types.SessionState{}, err
	}
	if _, err := s.engine.GeometryFor(t.Name, s.canvasSizePX, t.Rings); err != nil {
		return types.SessionState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return types.SessionState{}, err
	}
	if sess.Log.SetTarget(t.Name) {
		sess.TargetName = t.Name
		metrics.RecordTargetSwitch()
		s.logger.Debug(ctx, "target switched, log cleared",
			logger.String("sessionID", sess.ID),
			logger.String("target", t.Name),
		)
	}
	return s.state(sess), nil
}

// RecordShot scores a click and appends it to the session's log.
func (s *Service) RecordShot(ctx context.Context, sessionID string, xPx, yPx float64) (types.Shot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return types.Shot{}, err
	}
	t, err := s.catalog.Lookup(sess.TargetName)
	if err != nil {
		return types.Shot{}, err
	}
	geo, err := s.engine.GeometryFor(t.Name, s.canvasSizePX, t.Rings)
	if err != nil {
		return types.Shot{}, err
	}

	start := time.Now()
	res, err := s.engine.Score(ctx, scoring.Input{
		ClickXPX: xPx,
		ClickYPX: yPx,
		Geometry: geo,
		Rings:    t.Rings,
	})
	if err != nil {
		return types.Shot{}, err
	}
	metrics.RecordScoringLatency(float64(time.Since(start).Nanoseconds()) / 1e6)

	shot := sess.Log.Append(res, xPx, yPx)
	metrics.RecordShot(shot.Score)

	s.logger.Debug(ctx, "shot recorded",
		logger.String("sessionID", sess.ID),
		logger.Int("shot", shot.Index),
		logger.Int("score", shot.Score),
		logger.Float64("xMM", shot.XMM),
		logger.Float64("yMM", shot.YMM),
	)
	return toAPIShot(shot), nil
}

// Shots returns the session's logged shots in order.
func (s *Service) Shots(ctx context.Context, sessionID string) ([]types.Shot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	shots := sess.Log.Shots()
	out := make([]types.Shot, len(shots))
	for i, sh := range shots {
		out[i] = toAPIShot(sh)
	}
	return out, nil
}

// ClearShots empties the session's log.
func (s *Service) ClearShots(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Log.Clear()
	metrics.RecordLogClear()
	return nil
}

// ExportCSV renders the session's log as CSV bytes.
// Returns shotlog.ErrEmptyLog when there is nothing to export.
func (s *Service) ExportCSV(ctx context.Context, sessionID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	data, err := sess.Log.ExportCSV()
	if err != nil {
		if errors.Is(err, shotlog.ErrEmptyLog) {
			metrics.RecordExportEmpty()
		}
		return nil, err
	}
	metrics.RecordExport(sess.Log.Len())
	return data, nil
}

// Render builds the drawing description for a session: rings in descending
// diameter order (inner rings draw last, on top) plus markers for every
// logged shot.
func (s *Service) Render(ctx context.Context, sessionID string) (types.RenderDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return types.RenderDescription{}, err
	}
	t, err := s.catalog.Lookup(sess.TargetName)
	if err != nil {
		return types.RenderDescription{}, err
	}
	geo, err := s.engine.GeometryFor(t.Name, s.canvasSizePX, t.Rings)
	if err != nil {
		return types.RenderDescription{}, err
	}

	rings := make([]catalog.Ring, len(t.Rings))
	copy(rings, t.Rings)
	sort.Slice(rings, func(i, j int) bool {
		return rings[i].DiameterMM > rings[j].DiameterMM
	})

	desc := types.RenderDescription{
		Target:       t.Name,
		CanvasSizePX: geo.CanvasSizePX,
		CenterPX:     geo.CenterPX,
		Rings:        make([]types.RenderRing, len(rings)),
		Markers:      []types.Marker{},
	}
	for i, r := range rings {
		desc.Rings[i] = types.RenderRing{
			Label:       r.ID,
			RadiusPX:    r.Radius() * geo.PixelsPerMM,
			Color:       r.Color,
			Points:      r.Points,
			LabelHidden: i >= len(rings)-labelSuppressedRings,
		}
	}
	for _, sh := range sess.Log.Shots() {
		desc.Markers = append(desc.Markers, types.Marker{
			Index:  sh.Index,
			Score:  sh.Score,
			PixelX: sh.PixelX,
			PixelY: sh.PixelY,
		})
	}
	return desc, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"canvasSizePx": s.canvasSizePX,
		"maxSessions":  s.maxSessions,
	}

	if s.started {
		count := s.sessions.Count(context.Background())
		stats["activeSessions"] = count
		stats["catalogTargets"] = s.catalog.Len()
		metrics.UpdateActiveSessions(count)
	}

	return stats
}

// state builds the client snapshot for a session. Callers hold s.mu.
func (s *Service) state(sess *repository.Session) types.SessionState {
	return types.SessionState{
		SessionID:    sess.ID,
		Target:       sess.TargetName,
		CanvasSizePX: s.canvasSizePX,
		ShotCount:    sess.Log.Len(),
	}
}

func toAPIShot(sh shotlog.Shot) types.Shot {
	return types.Shot{
		Index:  sh.Index,
		Score:  sh.Score,
		XMM:    sh.XMM,
		YMM:    sh.YMM,
		PixelX: sh.PixelX,
		PixelY: sh.PixelY,
	}
}
