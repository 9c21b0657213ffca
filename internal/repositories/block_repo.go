package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"campus_nav/internal/models"
)

// ListBlocks retorna los bloqueos almacenados.
func (r *Neo4jCampusRepository) ListBlocks(ctx context.Context) ([]models.BlockedPath, error) {
	records, err := r.read(ctx, queryBlocked, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked paths: %w", err)
	}
	var blocked []models.BlockedPath
	for _, record := range records {
		b, err := blockFromRecord(record)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, b)
	}
	return blocked, nil
}

// SaveBlock bloquea el recorrido from→to (solo esa dirección).
// Si ya existía, actualiza motivo y temporalidad.
func (r *Neo4jCampusRepository) SaveBlock(ctx context.Context, block models.BlockedPath) error {
	query := `
        MATCH (from:Ubicacion {id: $from}), (to:Ubicacion {id: $to})
        MERGE (from)-[rel:BLOQUEA]->(to)
        ON CREATE SET rel.orden = $orden
        SET rel.motivo = $reason, rel.temporal = $temporary
        RETURN count(rel) AS saved
        `
	params := map[string]any{
		"from":      block.From,
		"to":        block.To,
		"reason":    block.Reason,
		"temporary": block.Temporary,
		"orden":     time.Now().UnixNano(),
	}
	result, err := neo4j.ExecuteQuery(ctx, r.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.Database))
	if err != nil {
		return fmt.Errorf("error blocking path between %s and %s: %w", block.From, block.To, err)
	}
	saved, err := countValue(result, "saved")
	if err != nil {
		return fmt.Errorf("error blocking path between %s and %s: %w", block.From, block.To, err)
	}
	if saved == 0 {
		return fmt.Errorf("error blocking path between %s and %s: unknown location", block.From, block.To)
	}
	return nil
}

// RemoveBlock elimina el bloqueo from→to. Retorna models.ErrBlockNotFound si no existía.
func (r *Neo4jCampusRepository) RemoveBlock(ctx context.Context, from, to string) error {
	query := `
        MATCH (:Ubicacion {id: $from})-[rel:BLOQUEA]->(:Ubicacion {id: $to})
        DELETE rel
        RETURN count(*) AS removed
        `
	params := map[string]any{"from": from, "to": to}
	result, err := neo4j.ExecuteQuery(ctx, r.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.Database))
	if err != nil {
		return fmt.Errorf("error unblocking path between %s and %s: %w", from, to, err)
	}

	removed, err := countValue(result, "removed")
	if err != nil {
		return fmt.Errorf("error unblocking path between %s and %s: %w", from, to, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s -> %s", models.ErrBlockNotFound, from, to)
	}
	return nil
}

// countValue lee el conteo de la primera fila; sin filas cuenta como 0.
func countValue(result *neo4j.EagerResult, key string) (int64, error) {
	if result == nil || len(result.Records) == 0 {
		return 0, nil
	}
	n, _, err := neo4j.GetRecordValue[int64](result.Records[0], key)
	return n, err
}
