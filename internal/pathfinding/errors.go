package pathfinding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSearchLimit se retorna cuando la frontera supera Options.MaxOpenSet.
var ErrSearchLimit = errors.New("route search exceeded open set limit")

// InvalidNodeError nombra los ids de origen o destino que no existen en el grafo.
// Es distinto de "sin ruta", que no es un error.
type InvalidNodeError struct {
	IDs []string
}

func (e *InvalidNodeError) Error() string {
	quoted := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	return "unknown campus node(s): " + strings.Join(quoted, ", ")
}
