package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"campus_nav/internal/campusdata"
	"campus_nav/internal/models"
)

// FileCampusRepository usa un archivo YAML/JSON como fuente del campus.
// Con Path vacío usa el campus embebido y guarda los bloqueos solo en memoria.
type FileCampusRepository struct {
	Path string

	mu     sync.Mutex
	memory *models.CampusData
}

func NewFileCampusRepository(path string) *FileCampusRepository {
	return &FileCampusRepository{Path: path}
}

func (r *FileCampusRepository) LoadCampus(ctx context.Context) (models.CampusData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return models.CampusData{}, err
	}
	return copyData(data), nil
}

func (r *FileCampusRepository) SaveBlock(ctx context.Context, block models.BlockedPath) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(data.BlockedPaths, func(b models.BlockedPath) bool {
		return b.From == block.From && b.To == block.To
	})
	if i >= 0 {
		data.BlockedPaths[i] = block
	} else {
		data.BlockedPaths = append(data.BlockedPaths, block)
	}
	return r.store(data)
}

func (r *FileCampusRepository) RemoveBlock(ctx context.Context, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(data.BlockedPaths, func(b models.BlockedPath) bool {
		return b.From == from && b.To == to
	})
	if i < 0 {
		return fmt.Errorf("%w: %s -> %s", models.ErrBlockNotFound, from, to)
	}
	data.BlockedPaths = slices.Delete(data.BlockedPaths, i, i+1)
	return r.store(data)
}

func (r *FileCampusRepository) load() (models.CampusData, error) {
	if r.Path == "" {
		if r.memory == nil {
			data, err := campusdata.Default()
			if err != nil {
				return models.CampusData{}, err
			}
			r.memory = &data
		}
		return copyData(*r.memory), nil
	}
	return campusdata.Load(r.Path)
}

// store reescribe el archivo a través de un temporal para no dejarlo a medias.
func (r *FileCampusRepository) store(data models.CampusData) error {
	if r.Path == "" {
		r.memory = &data
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.Path), ".campus-*.yaml")
	if err != nil {
		return fmt.Errorf("error writing campus file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := campusdata.Write(tmp, r.Path, data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing campus file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("error replacing campus file: %w", err)
	}
	return nil
}

func copyData(d models.CampusData) models.CampusData {
	return models.CampusData{
		Nodes:        slices.Clone(d.Nodes),
		Edges:        slices.Clone(d.Edges),
		BlockedPaths: slices.Clone(d.BlockedPaths),
	}
}
