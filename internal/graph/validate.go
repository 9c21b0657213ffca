package graph

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"campus_nav/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct valida las etiquetas `validate` de un nodo, arista o bloqueo
// y agrega un problema por cada campo inválido.
func checkStruct(cfgErr *ConfigurationError, what string, v any) {
	err := validate.Struct(v)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		cfgErr.add("%s: %v", what, err)
		return
	}
	for _, fe := range fieldErrs {
		cfgErr.add("%s: field %s fails %q", what, fe.Field(), ruleText(fe))
	}
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}

func describeEdge(i int, e models.CampusEdge) string {
	return fmt.Sprintf("edge[%d] %s->%s", i, e.From, e.To)
}

func describeBlock(i int, b models.BlockedPath) string {
	return fmt.Sprintf("blockedPath[%d] %s->%s", i, b.From, b.To)
}
