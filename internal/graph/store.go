package graph

import "sync/atomic"

// Store publica la instantánea vigente del grafo. Las consultas toman la
// instantánea con Load y la usan hasta terminar; una edición construye un
// grafo nuevo y lo publica con Swap, sin mutar el anterior.
type Store struct {
	current atomic.Pointer[Graph]
}

func NewStore(g *Graph) *Store {
	s := &Store{}
	s.current.Store(g)
	return s
}

// Load retorna la instantánea vigente (nil si nunca se publicó una).
func (s *Store) Load() *Graph {
	return s.current.Load()
}

// Swap publica g y retorna la instantánea anterior.
func (s *Store) Swap(g *Graph) *Graph {
	return s.current.Swap(g)
}
