// Package directions convierte una secuencia de nodos en pasos de navegación legibles.
package directions

import (
	"fmt"

	"campus_nav/internal/graph"
	"campus_nav/internal/models"
)

// Explain emite un paso por cada par consecutivo de path.
// Falla si path nombra un nodo desconocido o un salto sin recorrido transitable.
func Explain(g *graph.Graph, path []string) ([]models.NavigationStep, error) {
	steps := make([]models.NavigationStep, 0, max(len(path)-1, 0))

	for i := 0; i+1 < len(path); i++ {
		from, ok := g.GetNode(path[i])
		if !ok {
			return nil, fmt.Errorf("explain: unknown node %q at position %d", path[i], i)
		}
		to, ok := g.GetNode(path[i+1])
		if !ok {
			return nil, fmt.Errorf("explain: unknown node %q at position %d", path[i+1], i+1)
		}
		cost, ok := g.Edge(from.ID, to.ID)
		if !ok {
			return nil, fmt.Errorf("explain: no traversable connection %s->%s", from.ID, to.ID)
		}

		floorChange := from.Floor != to.Floor
		steps = append(steps, models.NavigationStep{
			FromNodeID:  from.ID,
			ToNodeID:    to.ID,
			FromLabel:   from.Label,
			ToLabel:     to.Label,
			Floor:       to.Floor,
			Distance:    cost,
			Instruction: Instruction(from, to),
			FloorChange: floorChange,
		})
	}
	return steps, nil
}

// Result arma el PathResult recalculando la distancia total con los pesos del grafo.
func Result(g *graph.Graph, path []string) (models.PathResult, error) {
	if len(path) == 1 && !g.HasNode(path[0]) {
		return models.PathResult{}, fmt.Errorf("explain: unknown node %q at position 0", path[0])
	}

	steps, err := Explain(g, path)
	if err != nil {
		return models.PathResult{}, err
	}

	total := 0.0
	for _, s := range steps {
		total += s.Distance
	}
	return models.PathResult{
		Path:          append([]string(nil), path...),
		TotalDistance: total,
		Steps:         steps,
	}, nil
}
