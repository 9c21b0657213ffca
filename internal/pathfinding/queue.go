package pathfinding

// Item representa un nodo en la cola de prioridad.
type Item struct {
	Value    string
	Priority float64 // f = g + h
	Cost     float64 // g
	Seq      uint64  // orden de inserción
	Index    int     // Índice de la cola de prioridad.
}

// PriorityQueue implementa heap.Interface. Desempata por menor costo acumulado
// y luego por orden de inserción, así el resultado es estable entre ejecuciones.
type PriorityQueue []*Item

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return a.Seq < b.Seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x any) {
	n := len(*pq)
	item := x.(*Item)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // evitar fugas de memoria
	item.Index = -1 // por seguridad
	*pq = old[0 : n-1]
	return item
}
