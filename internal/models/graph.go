package models

// NodeType clasifica un nodo del campus. Solo afecta iconos y etiquetas, nunca la búsqueda.
type NodeType string

const (
	NodeClassroom NodeType = "classroom"
	NodeCorridor  NodeType = "corridor"
	NodeStairs    NodeType = "stairs"
	NodeEntrance  NodeType = "entrance"
	NodePatio     NodeType = "patio"
	NodeBathroom  NodeType = "bathroom"
	NodeOffice    NodeType = "office"
)

// CampusNode es una ubicación del edificio.
type CampusNode struct {
	ID      string   `json:"id" yaml:"id" validate:"required"`
	Type    NodeType `json:"type" yaml:"type" validate:"required,oneof=classroom corridor stairs entrance patio bathroom office"`
	Label   string   `json:"label" yaml:"label" validate:"required"`
	Floor   int      `json:"floor" yaml:"floor" validate:"gte=0"`
	X       float64  `json:"x" yaml:"x"`
	Y       float64  `json:"y" yaml:"y"`
	Width   *float64 `json:"width,omitempty" yaml:"width,omitempty" validate:"omitempty,gt=0"`
	Height  *float64 `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
	SalonID *int     `json:"salonId,omitempty" yaml:"salonId,omitempty"`
}

// CampusEdge conecta dos nodos. Distance son segundos estimados de caminata.
type CampusEdge struct {
	From          string  `json:"from" yaml:"from" validate:"required"`
	To            string  `json:"to" yaml:"to" validate:"required"`
	Distance      float64 `json:"distance" yaml:"distance" validate:"gt=0"`
	Bidirectional bool    `json:"bidirectional" yaml:"bidirectional"`
}

// BlockedPath suprime el recorrido From→To. Es sensible a la dirección.
type BlockedPath struct {
	From      string `json:"from" yaml:"from" validate:"required"`
	To        string `json:"to" yaml:"to" validate:"required"`
	Reason    string `json:"reason" yaml:"reason"`
	Temporary bool   `json:"temporary" yaml:"temporary"`
}

// CampusData agrupa las tres listas de configuración estática.
type CampusData struct {
	Nodes        []CampusNode  `json:"nodes" yaml:"nodes"`
	Edges        []CampusEdge  `json:"edges" yaml:"edges"`
	BlockedPaths []BlockedPath `json:"blockedPaths" yaml:"blockedPaths"`
}

// Neighbor es un recorrido saliente ya validado: nodo destino y peso.
type Neighbor struct {
	Item string  `json:"id"`
	Cost float64 `json:"cost"`
}
