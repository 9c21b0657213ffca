package graph

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"campus_nav/internal/models"
)

const (
	graphName          = "campus"
	graphColorBlocked  = "#d9534f"
	graphColorStairs   = "#f0ad4e"
	graphColorDefault  = "#5bc0de"
	graphColorEntrance = "#5cb85c"
)

// WriteDOT escribe el grafo en formato Graphviz, un cluster por piso.
// Los recorridos bloqueados se dibujan punteados y en rojo.
func WriteDOT(g *Graph, w io.Writer) error {
	dot := gographviz.NewEscape()
	if err := dot.SetName(graphName); err != nil {
		return err
	}
	if err := dot.SetDir(true); err != nil {
		return err
	}
	for _, attr := range [][2]string{{"rankdir", "LR"}, {"nodesep", "0.5"}, {"fontsize", "12"}} {
		if err := dot.AddAttr(graphName, attr[0], attr[1]); err != nil {
			return fmt.Errorf("dot attr %s: %w", attr[0], err)
		}
	}

	floors := map[int]bool{}
	for _, n := range g.data.Nodes {
		cluster := "cluster_floor_" + strconv.Itoa(n.Floor)
		if !floors[n.Floor] {
			floors[n.Floor] = true
			if err := dot.AddSubGraph(graphName, cluster, map[string]string{
				"label": fmt.Sprintf("Piso %d", n.Floor+1),
			}); err != nil {
				return fmt.Errorf("dot floor %d: %w", n.Floor, err)
			}
		}
		if err := dot.AddNode(cluster, n.ID, map[string]string{
			"label":     n.Label,
			"tooltip":   string(n.Type),
			"shape":     "box",
			"style":     "filled",
			"fillcolor": nodeColor(n.Type),
		}); err != nil {
			return fmt.Errorf("dot node %s: %w", n.ID, err)
		}
	}

	for _, e := range g.data.Edges {
		forwardBlocked := g.IsBlocked(e.From, e.To)
		reverseBlocked := e.Bidirectional && g.IsBlocked(e.To, e.From)
		weight := strconv.FormatFloat(e.Distance, 'f', -1, 64)

		if e.Bidirectional && !forwardBlocked && !reverseBlocked {
			if err := dot.AddEdge(e.From, e.To, true, map[string]string{"label": weight, "dir": "both"}); err != nil {
				return err
			}
			continue
		}
		if err := addDirected(dot, g, e.From, e.To, weight, forwardBlocked); err != nil {
			return err
		}
		if e.Bidirectional {
			if err := addDirected(dot, g, e.To, e.From, weight, reverseBlocked); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, dot.String())
	return err
}

func addDirected(dot *gographviz.Escape, g *Graph, from, to, weight string, blocked bool) error {
	attrs := map[string]string{"label": weight}
	if blocked {
		attrs["style"] = "dashed"
		attrs["color"] = graphColorBlocked
		if b, ok := g.blocked[hop{from, to}]; ok && b.Reason != "" {
			attrs["tooltip"] = b.Reason
		}
	}
	if err := dot.AddEdge(from, to, true, attrs); err != nil {
		return fmt.Errorf("dot edge %s->%s: %w", from, to, err)
	}
	return nil
}

func nodeColor(nodeType models.NodeType) string {
	switch nodeType {
	case models.NodeStairs:
		return graphColorStairs
	case models.NodeEntrance:
		return graphColorEntrance
	default:
		return graphColorDefault
	}
}
