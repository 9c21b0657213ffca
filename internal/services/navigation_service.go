package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"campus_nav/internal/graph"
	"campus_nav/internal/metrics"
	"campus_nav/internal/models"
	"campus_nav/internal/pathfinding"
)

// ErrNotLoaded se retorna si se consulta antes del primer Reload exitoso.
var ErrNotLoaded = errors.New("campus graph not loaded")

// CampusSource provee la configuración del campus y persiste los bloqueos.
type CampusSource interface {
	LoadCampus(ctx context.Context) (models.CampusData, error)
	SaveBlock(ctx context.Context, block models.BlockedPath) error
	RemoveBlock(ctx context.Context, from, to string) error
}

// NavigationService responde consultas de ruta sobre la instantánea vigente del grafo.
// Las consultas no toman locks; las ediciones se serializan y publican un grafo nuevo.
type NavigationService struct {
	source  CampusSource
	store   *graph.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    pathfinding.Options

	mu sync.Mutex
}

func NewNavigationService(source CampusSource, logger *slog.Logger, m *metrics.Metrics, opts pathfinding.Options) *NavigationService {
	return &NavigationService{
		source:  source,
		store:   graph.NewStore(nil),
		metrics: m,
		logger:  logger,
		opts:    opts,
	}
}

// Reload lee la fuente, valida y publica una instantánea nueva.
func (s *NavigationService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.source.LoadCampus(ctx)
	if err != nil {
		return fmt.Errorf("load campus: %w", err)
	}
	return s.publish(ctx, data, "reload")
}

func (s *NavigationService) publish(ctx context.Context, data models.CampusData, reason string) error {
	g, err := graph.Build(data)
	if err != nil {
		return err
	}
	for _, b := range g.UnmatchedBlocks() {
		s.logger.WarnContext(ctx, "blocked path matches no connection", "from", b.From, "to", b.To)
	}
	s.store.Swap(g)
	s.metrics.ObserveRebuild(reason, g.Len(), len(data.BlockedPaths))
	s.logger.InfoContext(ctx, "campus graph published",
		"reason", reason, "nodes", g.Len(), "edges", len(data.Edges), "blocked", len(data.BlockedPaths))
	return nil
}

// Snapshot retorna la instantánea vigente.
func (s *NavigationService) Snapshot() (*graph.Graph, error) {
	g := s.store.Load()
	if g == nil {
		return nil, ErrNotLoaded
	}
	return g, nil
}

// FindRoute calcula la ruta mínima entre from y to.
// ok == false con err == nil significa que no existe ruta.
func (s *NavigationService) FindRoute(ctx context.Context, from, to string) (models.PathResult, bool, error) {
	g, err := s.Snapshot()
	if err != nil {
		return models.PathResult{}, false, err
	}

	started := time.Now()
	result, ok, stats, err := pathfinding.FindPathWithOptions(g, from, to, s.opts)
	elapsed := time.Since(started)

	var invalid *pathfinding.InvalidNodeError
	switch {
	case errors.As(err, &invalid):
		s.metrics.ObserveSearch(metrics.OutcomeInvalid, elapsed, stats.Expanded)
	case err != nil:
		s.metrics.ObserveSearch(metrics.OutcomeError, elapsed, stats.Expanded)
		s.logger.ErrorContext(ctx, "route search failed", "from", from, "to", to, "error", err)
	case !ok:
		s.metrics.ObserveSearch(metrics.OutcomeNotFound, elapsed, stats.Expanded)
		s.logger.DebugContext(ctx, "no route", "from", from, "to", to, "expanded", stats.Expanded)
	default:
		s.metrics.ObserveSearch(metrics.OutcomeFound, elapsed, stats.Expanded)
		s.logger.DebugContext(ctx, "route found",
			"from", from, "to", to, "hops", len(result.Steps), "total", result.TotalDistance, "expanded", stats.Expanded)
	}
	return result, ok, err
}

// ReachableWithin lista los destinos alcanzables desde from en a lo más seconds segundos.
func (s *NavigationService) ReachableWithin(ctx context.Context, from string, seconds float64) ([]models.Reachable, error) {
	g, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return pathfinding.ReachableWithin(g, from, seconds)
}

// FindInaccessible separa los nodos alcanzables desde start de los inaccesibles.
func (s *NavigationService) FindInaccessible(ctx context.Context, start string) ([]string, []string, error) {
	g, err := s.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	if !g.HasNode(start) {
		return nil, nil, &pathfinding.InvalidNodeError{IDs: []string{start}}
	}
	accessible, inaccessible := graph.Reachability(g, start)
	return accessible, inaccessible, nil
}

func (s *NavigationService) Nodes(ctx context.Context) ([]models.CampusNode, error) {
	g, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return g.Nodes(), nil
}

func (s *NavigationService) Blocked(ctx context.Context) ([]models.BlockedPath, error) {
	g, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return g.Blocked(), nil
}

// BlockPath bloquea el recorrido block.From→block.To. Si ya estaba bloqueado
// reemplaza motivo y temporalidad. El grafo nuevo se valida antes de persistir.
func (s *NavigationService) BlockPath(ctx context.Context, block models.BlockedPath) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.Snapshot()
	if err != nil {
		return err
	}
	data := g.Data()
	i := slices.IndexFunc(data.BlockedPaths, func(b models.BlockedPath) bool {
		return b.From == block.From && b.To == block.To
	})
	if i >= 0 {
		data.BlockedPaths[i] = block
	} else {
		data.BlockedPaths = append(data.BlockedPaths, block)
	}

	if _, err := graph.Build(data); err != nil {
		return err
	}
	if err := s.source.SaveBlock(ctx, block); err != nil {
		return fmt.Errorf("save blocked path: %w", err)
	}
	return s.publish(ctx, data, "block")
}

// UnblockPath elimina el bloqueo from→to. Retorna models.ErrBlockNotFound si no existe.
func (s *NavigationService) UnblockPath(ctx context.Context, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.Snapshot()
	if err != nil {
		return err
	}
	data := g.Data()
	i := slices.IndexFunc(data.BlockedPaths, func(b models.BlockedPath) bool {
		return b.From == from && b.To == to
	})
	if i < 0 {
		return fmt.Errorf("%w: %s -> %s", models.ErrBlockNotFound, from, to)
	}
	data.BlockedPaths = slices.Delete(data.BlockedPaths, i, i+1)

	if err := s.source.RemoveBlock(ctx, from, to); err != nil {
		return fmt.Errorf("remove blocked path: %w", err)
	}
	return s.publish(ctx, data, "unblock")
}

// WriteDOT escribe la instantánea vigente en formato Graphviz.
func (s *NavigationService) WriteDOT(ctx context.Context, w io.Writer) error {
	g, err := s.Snapshot()
	if err != nil {
		return err
	}
	return graph.WriteDOT(g, w)
}
