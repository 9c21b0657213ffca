package graph

// Reachability recorre en anchura los recorridos transitables desde start y
// separa los nodos alcanzables de los inaccesibles, ambos en orden de declaración.
// Si start no existe, todos los nodos son inaccesibles.
func Reachability(g *Graph, start string) ([]string, []string) {
	visited := make(map[string]bool, g.Len())

	if g.HasNode(start) {
		queue := []string{start}
		visited[start] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, neighbor := range g.adjacency[current] {
				if !visited[neighbor.Item] {
					visited[neighbor.Item] = true
					queue = append(queue, neighbor.Item)
				}
			}
		}
	}

	accessible := []string{}
	inaccessible := []string{}
	for _, n := range g.data.Nodes {
		if visited[n.ID] {
			accessible = append(accessible, n.ID)
		} else {
			inaccessible = append(inaccessible, n.ID)
		}
	}
	return accessible, inaccessible
}
