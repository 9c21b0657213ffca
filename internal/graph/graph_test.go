package graph

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_nav/internal/campusdata"
	"campus_nav/internal/models"
)

func node(id string, floor int, x, y float64) models.CampusNode {
	return models.CampusNode{ID: id, Type: models.NodeCorridor, Label: strings.ToUpper(id), Floor: floor, X: x, Y: y}
}

func lineData() models.CampusData {
	return models.CampusData{
		Nodes: []models.CampusNode{node("a", 0, 0, 0), node("b", 0, 10, 0), node("c", 0, 20, 0)},
		Edges: []models.CampusEdge{
			{From: "a", To: "b", Distance: 5, Bidirectional: true},
			{From: "b", To: "c", Distance: 7, Bidirectional: false},
		},
	}
}

func configErr(t *testing.T, err error) *ConfigurationError {
	t.Helper()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
	return cfgErr
}

func TestBuildAdjacency(t *testing.T) {
	g, err := Build(lineData())
	require.NoError(t, err)

	assert.Equal(t, []models.Neighbor{{Item: "b", Cost: 5}}, g.Neighbors("a"))
	assert.Equal(t, []models.Neighbor{{Item: "a", Cost: 5}, {Item: "c", Cost: 7}}, g.Neighbors("b"))
	assert.Empty(t, g.Neighbors("c"), "unidirectional edge must not add c->b")
	assert.Empty(t, g.Neighbors("missing"))

	n, ok := g.GetNode("b")
	require.True(t, ok)
	assert.Equal(t, "B", n.Label)
	_, ok = g.GetNode("zzz")
	assert.False(t, ok)
	assert.Equal(t, 3, g.Len())
}

func TestBuildBlockingIsDirectional(t *testing.T) {
	data := lineData()
	data.BlockedPaths = []models.BlockedPath{{From: "a", To: "b", Reason: "obras"}}

	g, err := Build(data)
	require.NoError(t, err)

	assert.Empty(t, g.Neighbors("a"))
	assert.Equal(t, []models.Neighbor{{Item: "a", Cost: 5}, {Item: "c", Cost: 7}}, g.Neighbors("b"))
	assert.True(t, g.IsBlocked("a", "b"))
	assert.False(t, g.IsBlocked("b", "a"))
	assert.Empty(t, g.UnmatchedBlocks())

	_, ok := g.Edge("a", "b")
	assert.False(t, ok)
	cost, ok := g.Edge("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 5.0, cost)
}

func TestBuildUnmatchedBlock(t *testing.T) {
	data := lineData()
	// c->b no existe: b->c es unidireccional
	data.BlockedPaths = []models.BlockedPath{{From: "c", To: "b"}}

	g, err := Build(data)
	require.NoError(t, err)
	assert.Equal(t, []models.BlockedPath{{From: "c", To: "b"}}, g.UnmatchedBlocks())
}

func TestBuildParallelEdgesKeepCheapest(t *testing.T) {
	data := lineData()
	data.Edges = append(data.Edges, models.CampusEdge{From: "b", To: "a", Distance: 3})

	g, err := Build(data)
	require.NoError(t, err)

	cost, ok := g.Edge("b", "a")
	require.True(t, ok)
	assert.Equal(t, 3.0, cost)
	cost, _ = g.Edge("a", "b")
	assert.Equal(t, 5.0, cost)
	assert.Len(t, g.Neighbors("b"), 2)
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CampusData)
		want   string
	}{
		{
			name: "dangling edge",
			mutate: func(d *models.CampusData) {
				d.Edges = append(d.Edges, models.CampusEdge{From: "a", To: "ghost", Distance: 1})
			},
			want: `edge[2] a->ghost: unknown node "ghost"`,
		},
		{
			name: "duplicate node",
			mutate: func(d *models.CampusData) {
				d.Nodes = append(d.Nodes, node("a", 0, 1, 1))
			},
			want: `duplicate node id "a"`,
		},
		{
			name: "zero distance",
			mutate: func(d *models.CampusData) {
				d.Edges[0].Distance = 0
			},
			want: "edge[0] a->b: field Distance fails \"gt=0\"",
		},
		{
			name: "negative distance",
			mutate: func(d *models.CampusData) {
				d.Edges[1].Distance = -3
			},
			want: "edge[1] b->c: field Distance fails \"gt=0\"",
		},
		{
			name: "unknown node type",
			mutate: func(d *models.CampusData) {
				d.Nodes[0].Type = "garage"
			},
			want: "field Type fails",
		},
		{
			name: "negative floor",
			mutate: func(d *models.CampusData) {
				d.Nodes[2].Floor = -1
			},
			want: "field Floor fails \"gte=0\"",
		},
		{
			name: "self loop",
			mutate: func(d *models.CampusData) {
				d.Edges = append(d.Edges, models.CampusEdge{From: "c", To: "c", Distance: 2})
			},
			want: "edge[2] c->c: self-loop",
		},
		{
			name: "nan coordinate",
			mutate: func(d *models.CampusData) {
				d.Nodes[1].X = math.NaN()
			},
			want: "node[1] b: coordinates must be finite",
		},
		{
			name: "infinite coordinate",
			mutate: func(d *models.CampusData) {
				d.Nodes[2].Y = math.Inf(-1)
			},
			want: "node[2] c: coordinates must be finite",
		},
		{
			name: "infinite distance",
			mutate: func(d *models.CampusData) {
				d.Edges[0].Distance = math.Inf(1)
			},
			want: "edge[0] a->b: distance must be finite",
		},
		{
			name: "block on unknown node",
			mutate: func(d *models.CampusData) {
				d.BlockedPaths = []models.BlockedPath{{From: "a", To: "nowhere"}}
			},
			want: `blockedPath[0] a->nowhere: unknown node "nowhere"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := lineData()
			tt.mutate(&data)

			g, err := Build(data)
			require.Error(t, err)
			assert.Nil(t, g)
			cfgErr := configErr(t, err)
			assert.Contains(t, strings.Join(cfgErr.Problems, "\n"), tt.want)
		})
	}
}

func TestBuildRejectsNonFiniteCoordinatesFromYAML(t *testing.T) {
	doc := `
nodes:
  - { id: s, type: corridor, label: S, floor: 0, x: 0, y: 0 }
  - { id: a, type: corridor, label: A, floor: 0, x: 50, y: 0 }
  - { id: t, type: corridor, label: T, floor: 0, x: 100, y: 0 }
  - { id: z, type: corridor, label: Z, floor: 0, x: .nan, y: 0 }
edges:
  - { from: s, to: t, distance: 1000, bidirectional: true }
  - { from: s, to: a, distance: 1, bidirectional: true }
  - { from: a, to: t, distance: 1, bidirectional: true }
  - { from: t, to: z, distance: 5, bidirectional: true }
`
	data, err := campusdata.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, math.IsNaN(data.Nodes[3].X))

	g, err := Build(data)
	require.Error(t, err)
	assert.Nil(t, g)
	assert.Equal(t, []string{"node[3] z: coordinates must be finite, got (NaN, 0)"}, configErr(t, err).Problems)
}

func TestBuildCollectsAllProblems(t *testing.T) {
	data := lineData()
	data.Edges = append(data.Edges,
		models.CampusEdge{From: "x", To: "a", Distance: 1},
		models.CampusEdge{From: "a", To: "y", Distance: 1},
	)
	_, err := Build(data)
	cfgErr := configErr(t, err)
	assert.Len(t, cfgErr.Problems, 2)
	assert.Contains(t, err.Error(), "2 problems")
}

func TestBuildDoesNotAliasInput(t *testing.T) {
	data := lineData()
	g, err := Build(data)
	require.NoError(t, err)

	data.Nodes[0].Label = "changed"
	data.Edges[0].Distance = 99
	assert.Equal(t, "A", g.Nodes()[0].Label)
	assert.Equal(t, 5.0, g.Data().Edges[0].Distance)

	nodes := g.Nodes()
	nodes[1].Label = "mutated"
	assert.Equal(t, "B", g.Nodes()[1].Label)
}

func TestHeuristicScaleNeverOverestimates(t *testing.T) {
	data := models.CampusData{
		Nodes: []models.CampusNode{node("a", 0, 0, 0), node("b", 0, 100, 0), node("c", 0, 100, 50), node("s", 1, 100, 50)},
		Edges: []models.CampusEdge{
			{From: "a", To: "b", Distance: 20, Bidirectional: true},
			{From: "b", To: "c", Distance: 5, Bidirectional: true},
			{From: "c", To: "s", Distance: 30, Bidirectional: true},
		},
	}
	g, err := Build(data)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, g.HeuristicScale(), 1e-9)
	for _, n := range g.Nodes() {
		for _, nb := range g.Neighbors(n.ID) {
			other, _ := g.GetNode(nb.Item)
			assert.LessOrEqual(t, g.HeuristicScale()*PlanarDistance(n, other), nb.Cost)
		}
	}
}

func TestHeuristicScaleZeroWithoutPlanarHops(t *testing.T) {
	data := models.CampusData{
		Nodes: []models.CampusNode{node("a", 0, 5, 5), node("b", 1, 5, 5)},
		Edges: []models.CampusEdge{{From: "a", To: "b", Distance: 20, Bidirectional: true}},
	}
	g, err := Build(data)
	require.NoError(t, err)
	assert.Zero(t, g.HeuristicScale())
}

func TestReachability(t *testing.T) {
	data := lineData()
	data.Nodes = append(data.Nodes, node("island", 0, 50, 50))
	g, err := Build(data)
	require.NoError(t, err)

	accessible, inaccessible := Reachability(g, "a")
	assert.Equal(t, []string{"a", "b", "c"}, accessible)
	assert.Equal(t, []string{"island"}, inaccessible)

	accessible, inaccessible = Reachability(g, "c")
	assert.Equal(t, []string{"c"}, accessible)
	assert.Equal(t, []string{"a", "b", "island"}, inaccessible)

	accessible, inaccessible = Reachability(g, "unknown")
	assert.Empty(t, accessible)
	assert.Len(t, inaccessible, 4)
}

func TestStoreSwapKeepsOldSnapshot(t *testing.T) {
	first, err := Build(lineData())
	require.NoError(t, err)
	store := NewStore(first)

	held := store.Load()

	data := lineData()
	data.BlockedPaths = []models.BlockedPath{{From: "a", To: "b"}}
	second, err := Build(data)
	require.NoError(t, err)

	assert.Same(t, first, store.Swap(second))
	assert.Same(t, second, store.Load())
	assert.Len(t, held.Neighbors("a"), 1, "old snapshot must stay usable")
	assert.Empty(t, store.Load().Neighbors("a"))
}

func TestGraphConcurrentReads(t *testing.T) {
	g, err := Build(lineData())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Neighbors("b")
				_, _ = g.GetNode("c")
				_, _ = Reachability(g, "a")
			}
		}()
	}
	wg.Wait()
}

func TestWriteDOT(t *testing.T) {
	data := lineData()
	data.Nodes = append(data.Nodes, models.CampusNode{ID: "s-1", Type: models.NodeStairs, Label: "Escalera", Floor: 1, X: 20, Y: 0})
	data.Edges = append(data.Edges, models.CampusEdge{From: "c", To: "s-1", Distance: 25, Bidirectional: true})
	data.BlockedPaths = []models.BlockedPath{{From: "a", To: "b", Reason: "obras"}}
	g, err := Build(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(g, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph campus"))
	assert.Contains(t, out, "cluster_floor_0")
	assert.Contains(t, out, "cluster_floor_1")
	assert.Contains(t, out, `"s-1"`)
	assert.Contains(t, out, "dashed")
	assert.Contains(t, out, `"Piso 2"`)
}
