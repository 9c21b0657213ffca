// Package campusdata carga la configuración estática del campus (nodos, conexiones
// y bloqueos) desde YAML o JSON.
package campusdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"campus_nav/internal/models"
)

//go:embed campus.yaml
var defaultCampus []byte

// Default retorna el campus embebido.
func Default() (models.CampusData, error) {
	return Parse(bytes.NewReader(defaultCampus))
}

// Parse decodifica un documento YAML o JSON (JSON es YAML válido).
// Rechaza campos desconocidos para detectar errores de tipeo en la configuración.
func Parse(r io.Reader) (models.CampusData, error) {
	var data models.CampusData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return models.CampusData{}, errors.New("empty campus document")
		}
		return models.CampusData{}, fmt.Errorf("decode campus: %w", err)
	}
	return data, nil
}

// Load lee la configuración de path. Una ruta vacía retorna el campus embebido.
func Load(path string) (models.CampusData, error) {
	if path == "" {
		return Default()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return models.CampusData{}, fmt.Errorf("unsupported campus file extension %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return models.CampusData{}, fmt.Errorf("error reading campus file: %w", err)
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return models.CampusData{}, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Write serializa data como JSON si path termina en .json y como YAML en otro caso.
func Write(w io.Writer, path string, data models.CampusData) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode campus: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode campus: %w", err)
	}
	return enc.Close()
}
