package models

// NavigationStep es un salto de la ruta resuelta.
type NavigationStep struct {
	FromNodeID  string  `json:"fromNodeId"`
	ToNodeID    string  `json:"toNodeId"`
	FromLabel   string  `json:"fromLabel"`
	ToLabel     string  `json:"toLabel"`
	Floor       int     `json:"floor"`
	Distance    float64 `json:"distance"`
	Instruction string  `json:"instruction"`
	FloorChange bool    `json:"floorChange"`
}

// PathResult es el resultado de una búsqueda exitosa.
type PathResult struct {
	Path          []string         `json:"path"`
	TotalDistance float64          `json:"totalDistance"`
	Steps         []NavigationStep `json:"steps"`
}

// Reachable es un destino alcanzable dentro de un presupuesto de tiempo.
type Reachable struct {
	Path   []string `json:"path"`
	Time   float64  `json:"time_seconds"`
	Target string   `json:"target_node"`
}
