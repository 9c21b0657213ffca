package directions

import (
	"fmt"

	"campus_nav/internal/models"
)

// Instruction genera el texto de un salto. Un cambio de piso sin nodo de
// escaleras indica una configuración inconsistente; igual se emite un texto genérico.
func Instruction(from, to models.CampusNode) string {
	switch {
	case from.Floor != to.Floor && to.Type == models.NodeStairs:
		verb := "Sube"
		if to.Floor < from.Floor {
			verb = "Baja"
		}
		return fmt.Sprintf("%s las escaleras hacia el piso %d", verb, FloorNumber(to.Floor))
	case from.Floor != to.Floor:
		return fmt.Sprintf("Cambia de piso hacia %s", to.Label)
	default:
		return fmt.Sprintf("Continúa hacia %s", to.Label)
	}
}

// FloorNumber es el número de piso que ve el usuario: el índice 0 es el piso 1.
func FloorNumber(floor int) int {
	return floor + 1
}
