package pathfinding

import (
	"container/heap"
	"sort"

	"campus_nav/internal/graph"
	"campus_nav/internal/models"
)

// ShortestDistances corre Dijkstra desde start sobre los recorridos transitables.
// Devuelve las distancias mínimas y los predecesores de cada nodo alcanzado.
func ShortestDistances(g *graph.Graph, start string) (map[string]float64, map[string]string, error) {
	if !g.HasNode(start) {
		return nil, nil, &InvalidNodeError{IDs: []string{start}}
	}

	distances := map[string]float64{start: 0}
	previous := make(map[string]string)
	done := make(map[string]bool)

	var seq uint64
	pq := make(PriorityQueue, 0)
	heap.Init(&pq)
	heap.Push(&pq, &Item{Value: start})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*Item)
		if done[current.Value] {
			continue
		}
		done[current.Value] = true

		for _, neighbor := range g.Neighbors(current.Value) {
			newCost := current.Cost + neighbor.Cost
			if known, seen := distances[neighbor.Item]; seen && newCost >= known {
				continue
			}
			distances[neighbor.Item] = newCost
			previous[neighbor.Item] = current.Value
			seq++
			heap.Push(&pq, &Item{Value: neighbor.Item, Priority: newCost, Cost: newCost, Seq: seq})
		}
	}
	return distances, previous, nil
}

// ReachableWithin lista los destinos cuya distancia mínima desde start no supera
// budget segundos, ordenados por tiempo y luego por id. No incluye a start.
func ReachableWithin(g *graph.Graph, start string, budget float64) ([]models.Reachable, error) {
	distances, previous, err := ShortestDistances(g, start)
	if err != nil {
		return nil, err
	}

	result := []models.Reachable{}
	for node, cost := range distances {
		if node == start || cost > budget {
			continue
		}
		result = append(result, models.Reachable{
			Path:   travel(previous, start, node),
			Time:   cost,
			Target: node,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Time != result[j].Time {
			return result[i].Time < result[j].Time
		}
		return result[i].Target < result[j].Target
	})
	return result, nil
}
