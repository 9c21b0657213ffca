// Package graph materializa el grafo del campus a partir de la configuración
// estática y lo expone como una instantánea inmutable.
package graph

import (
	"fmt"
	"math"
	"slices"

	"campus_nav/internal/models"
)

type hop struct {
	from, to string
}

// Graph es una instantánea validada e inmutable del campus.
// Es seguro compartirla entre consultas concurrentes.
type Graph struct {
	data      models.CampusData
	nodes     map[string]models.CampusNode
	adjacency map[string][]models.Neighbor
	blocked   map[hop]models.BlockedPath
	unmatched []models.BlockedPath
	scale     float64
}

// Build valida las tres listas y construye el índice de adyacencia.
// Un bloqueo {From: A, To: B} elimina solo el recorrido A→B.
func Build(data models.CampusData) (*Graph, error) {
	cfgErr := &ConfigurationError{}

	g := &Graph{
		data:      cloneData(data),
		nodes:     make(map[string]models.CampusNode, len(data.Nodes)),
		adjacency: make(map[string][]models.Neighbor, len(data.Nodes)),
		blocked:   make(map[hop]models.BlockedPath, len(data.BlockedPaths)),
	}

	for i, n := range data.Nodes {
		checkStruct(cfgErr, fmt.Sprintf("node[%d] %s", i, n.ID), n)
		if !finite(n.X) || !finite(n.Y) {
			cfgErr.add("node[%d] %s: coordinates must be finite, got (%v, %v)", i, n.ID, n.X, n.Y)
		}
		if _, dup := g.nodes[n.ID]; dup {
			cfgErr.add("node[%d]: duplicate node id %q", i, n.ID)
			continue
		}
		g.nodes[n.ID] = n
	}

	for i, e := range data.Edges {
		what := describeEdge(i, e)
		checkStruct(cfgErr, what, e)
		if math.IsInf(e.Distance, 1) {
			cfgErr.add("%s: distance must be finite", what)
		}
		if _, ok := g.nodes[e.From]; !ok {
			cfgErr.add("%s: unknown node %q", what, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			cfgErr.add("%s: unknown node %q", what, e.To)
		}
		if e.From == e.To {
			cfgErr.add("%s: self-loop", what)
		}
	}

	for i, b := range data.BlockedPaths {
		what := describeBlock(i, b)
		checkStruct(cfgErr, what, b)
		for _, id := range []string{b.From, b.To} {
			if _, ok := g.nodes[id]; !ok {
				cfgErr.add("%s: unknown node %q", what, id)
			}
		}
		g.blocked[hop{b.From, b.To}] = b
	}

	if len(cfgErr.Problems) > 0 {
		return nil, cfgErr
	}

	matched := make(map[hop]bool, len(g.blocked))
	for _, e := range data.Edges {
		g.addHop(hop{e.From, e.To}, e.Distance, matched)
		if e.Bidirectional {
			g.addHop(hop{e.To, e.From}, e.Distance, matched)
		}
	}
	for _, b := range data.BlockedPaths {
		if !matched[hop{b.From, b.To}] {
			g.unmatched = append(g.unmatched, b)
		}
	}

	g.scale = g.computeScale()
	return g, nil
}

// addHop agrega h a la adyacencia salvo que esté bloqueado. Si el par ya existe
// se conserva el menor peso.
func (g *Graph) addHop(h hop, cost float64, matched map[hop]bool) {
	if _, isBlocked := g.blocked[h]; isBlocked {
		matched[h] = true
		return
	}
	neighbors := g.adjacency[h.from]
	for i := range neighbors {
		if neighbors[i].Item == h.to {
			neighbors[i].Cost = math.Min(neighbors[i].Cost, cost)
			return
		}
	}
	g.adjacency[h.from] = append(neighbors, models.Neighbor{Item: h.to, Cost: cost})
}

// computeScale devuelve el mayor k tal que k*distanciaPlana <= peso para todo
// recorrido transitable. Con ese k la heurística euclidiana es admisible y consistente.
func (g *Graph) computeScale() float64 {
	scale := math.Inf(1)
	for from, neighbors := range g.adjacency {
		a := g.nodes[from]
		for _, n := range neighbors {
			planar := PlanarDistance(a, g.nodes[n.Item])
			if planar == 0 {
				continue
			}
			scale = math.Min(scale, n.Cost/planar)
		}
	}
	if math.IsInf(scale, 1) {
		return 0
	}
	// margen para el redondeo de punto flotante
	return scale * (1 - 1e-9)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PlanarDistance es la distancia euclidiana entre las coordenadas (x, y); ignora el piso.
func PlanarDistance(a, b models.CampusNode) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Neighbors retorna los recorridos salientes de id en orden de declaración.
// Para un nodo desconocido o aislado retorna una secuencia vacía.
func (g *Graph) Neighbors(id string) []models.Neighbor {
	return slices.Clone(g.adjacency[id])
}

// GetNode busca un nodo por id.
func (g *Graph) GetNode(id string) (models.CampusNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode indica si id fue declarado.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Edge retorna el peso del recorrido transitable from→to.
func (g *Graph) Edge(from, to string) (float64, bool) {
	for _, n := range g.adjacency[from] {
		if n.Item == to {
			return n.Cost, true
		}
	}
	return 0, false
}

// IsBlocked indica si el recorrido from→to está suprimido por un bloqueo.
func (g *Graph) IsBlocked(from, to string) bool {
	_, ok := g.blocked[hop{from, to}]
	return ok
}

// Nodes retorna los nodos en orden de declaración.
func (g *Graph) Nodes() []models.CampusNode {
	return slices.Clone(g.data.Nodes)
}

// Blocked retorna los bloqueos vigentes en orden de declaración.
func (g *Graph) Blocked() []models.BlockedPath {
	return slices.Clone(g.data.BlockedPaths)
}

// UnmatchedBlocks retorna los bloqueos que no coinciden con ningún recorrido declarado.
func (g *Graph) UnmatchedBlocks() []models.BlockedPath {
	return slices.Clone(g.unmatched)
}

// Data retorna una copia de la configuración con la que se construyó el grafo.
func (g *Graph) Data() models.CampusData {
	return cloneData(g.data)
}

// HeuristicScale convierte distancia plana a segundos sin sobreestimar.
func (g *Graph) HeuristicScale() float64 {
	return g.scale
}

// Len retorna la cantidad de nodos.
func (g *Graph) Len() int {
	return len(g.nodes)
}

func cloneData(d models.CampusData) models.CampusData {
	return models.CampusData{
		Nodes:        slices.Clone(d.Nodes),
		Edges:        slices.Clone(d.Edges),
		BlockedPaths: slices.Clone(d.BlockedPaths),
	}
}
