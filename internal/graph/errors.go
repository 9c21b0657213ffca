package graph

import (
	"fmt"
	"strings"
)

// ConfigurationError reúne todos los problemas detectados al construir el grafo.
// Es fatal: un grafo inválido nunca llega a las consultas.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid campus configuration (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
