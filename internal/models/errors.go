package models

import "errors"

// ErrBlockNotFound indica que no existe un bloqueo para el recorrido pedido.
var ErrBlockNotFound = errors.New("blocked path not found")
