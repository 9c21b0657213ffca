// Package pathfinding calcula rutas mínimas sobre el grafo del campus.
package pathfinding

import (
	"container/heap"
	"fmt"
	"slices"

	"campus_nav/internal/directions"
	"campus_nav/internal/graph"
	"campus_nav/internal/models"
)

// Options ajusta una búsqueda. El valor cero no impone límites.
type Options struct {
	// MaxOpenSet limita el tamaño de la frontera; 0 es ilimitado.
	MaxOpenSet int
}

// SearchStats describe el esfuerzo de una búsqueda.
type SearchStats struct {
	Expanded int
	Pushed   int
}

// FindPath busca la ruta de menor distancia total entre start y goal y la explica.
// ok == false con err == nil significa que no hay ruta bajo los bloqueos actuales.
func FindPath(g *graph.Graph, start, goal string) (models.PathResult, bool, error) {
	result, ok, _, err := FindPathWithOptions(g, start, goal, Options{})
	return result, ok, err
}

// FindPathWithOptions es FindPath con límites y estadísticas.
func FindPathWithOptions(g *graph.Graph, start, goal string, opts Options) (models.PathResult, bool, SearchStats, error) {
	path, _, ok, stats, err := Search(g, start, goal, opts)
	if err != nil || !ok {
		return models.PathResult{}, ok, stats, err
	}
	result, err := directions.Result(g, path)
	if err != nil {
		return models.PathResult{}, false, stats, fmt.Errorf("explain route %s->%s: %w", start, goal, err)
	}
	return result, true, stats, nil
}

// Search ejecuta A* con heurística euclidiana escalada por g.HeuristicScale().
// Retorna la secuencia de ids desde start hasta goal, inclusive, y su costo.
func Search(g *graph.Graph, start, goal string, opts Options) ([]string, float64, bool, SearchStats, error) {
	var stats SearchStats

	if err := checkEndpoints(g, start, goal); err != nil {
		return nil, 0, false, stats, err
	}
	if start == goal {
		return []string{start}, 0, true, stats, nil
	}

	goalNode, _ := g.GetNode(goal)
	scale := g.HeuristicScale()
	heuristic := func(id string) float64 {
		n, _ := g.GetNode(id)
		return scale * graph.PlanarDistance(n, goalNode)
	}

	costs := map[string]float64{start: 0}
	previous := make(map[string]string)
	closed := make(map[string]bool)

	var seq uint64
	pq := make(PriorityQueue, 0)
	heap.Init(&pq)
	heap.Push(&pq, &Item{Value: start, Priority: heuristic(start), Cost: 0, Seq: seq})
	stats.Pushed++

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*Item)
		if closed[current.Value] {
			// entrada obsoleta
			continue
		}
		closed[current.Value] = true
		stats.Expanded++

		if current.Value == goal {
			return travel(previous, start, goal), current.Cost, true, stats, nil
		}

		for _, neighbor := range g.Neighbors(current.Value) {
			if closed[neighbor.Item] {
				continue
			}
			newCost := current.Cost + neighbor.Cost
			if known, seen := costs[neighbor.Item]; seen && newCost >= known {
				continue
			}
			costs[neighbor.Item] = newCost
			previous[neighbor.Item] = current.Value

			seq++
			heap.Push(&pq, &Item{
				Value:    neighbor.Item,
				Priority: newCost + heuristic(neighbor.Item),
				Cost:     newCost,
				Seq:      seq,
			})
			stats.Pushed++
			if opts.MaxOpenSet > 0 && pq.Len() > opts.MaxOpenSet {
				return nil, 0, false, stats, fmt.Errorf("%w (%d entries)", ErrSearchLimit, opts.MaxOpenSet)
			}
		}
	}

	return nil, 0, false, stats, nil
}

func checkEndpoints(g *graph.Graph, start, goal string) error {
	var missing []string
	if !g.HasNode(start) {
		missing = append(missing, start)
	}
	if !g.HasNode(goal) && goal != start {
		missing = append(missing, goal)
	}
	if len(missing) > 0 {
		return &InvalidNodeError{IDs: missing}
	}
	return nil
}

// travel reconstruye el camino siguiendo los predecesores desde end hasta start.
func travel(previous map[string]string, start, end string) []string {
	path := []string{end}
	for current := end; current != start; {
		current = previous[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}
