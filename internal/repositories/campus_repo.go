// repositories/campus_repo.go
package repositories

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"campus_nav/internal/models"
)

// Neo4jCampusRepository lee y escribe el grafo del campus en Neo4j.
// Ubicaciones son nodos :Ubicacion, conexiones son relaciones :CONECTA y
// los bloqueos son relaciones dirigidas :BLOQUEA.
type Neo4jCampusRepository struct {
	Driver   neo4j.DriverWithContext
	Database string
}

func NewNeo4jCampusRepository(driver neo4j.DriverWithContext, database string) *Neo4jCampusRepository {
	return &Neo4jCampusRepository{Driver: driver, Database: database}
}

const (
	queryNodes = `
        MATCH (u:Ubicacion)
        RETURN u.id AS id, u.tipo AS type, u.etiqueta AS label, u.piso AS floor,
               u.x AS x, u.y AS y, u.ancho AS width, u.alto AS height, u.salon_id AS salonId
        ORDER BY u.orden, u.id
        `
	queryEdges = `
        MATCH (a:Ubicacion)-[r:CONECTA]->(b:Ubicacion)
        RETURN a.id AS from, b.id AS to, r.distancia AS distance,
               COALESCE(r.bidireccional, TRUE) AS bidirectional
        ORDER BY r.orden, a.id, b.id
        `
	queryBlocked = `
        MATCH (a:Ubicacion)-[r:BLOQUEA]->(b:Ubicacion)
        RETURN a.id AS from, b.id AS to, COALESCE(r.motivo, '') AS reason,
               COALESCE(r.temporal, FALSE) AS temporary
        ORDER BY r.orden, a.id, b.id
        `
)

func (r *Neo4jCampusRepository) read(ctx context.Context, query string, params map[string]any) ([]*neo4j.Record, error) {
	result, err := neo4j.ExecuteQuery(ctx, r.Driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(r.Database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// LoadCampus retorna nodos, conexiones y bloqueos en orden de declaración.
func (r *Neo4jCampusRepository) LoadCampus(ctx context.Context) (models.CampusData, error) {
	var data models.CampusData

	records, err := r.read(ctx, queryNodes, nil)
	if err != nil {
		return data, fmt.Errorf("error fetching campus nodes: %w", err)
	}
	for _, record := range records {
		node, err := nodeFromRecord(record)
		if err != nil {
			return data, err
		}
		data.Nodes = append(data.Nodes, node)
	}

	records, err = r.read(ctx, queryEdges, nil)
	if err != nil {
		return data, fmt.Errorf("error fetching campus edges: %w", err)
	}
	for _, record := range records {
		edge, err := edgeFromRecord(record)
		if err != nil {
			return data, err
		}
		data.Edges = append(data.Edges, edge)
	}

	blocked, err := r.ListBlocks(ctx)
	if err != nil {
		return data, err
	}
	data.BlockedPaths = blocked
	return data, nil
}

// ImportCampus reemplaza el grafo almacenado por data en una sola transacción.
func (r *Neo4jCampusRepository) ImportCampus(ctx context.Context, data models.CampusData) error {
	session := r.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: r.Database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `MATCH (u:Ubicacion) DETACH DELETE u`, nil); err != nil {
			return nil, fmt.Errorf("error clearing campus: %w", err)
		}

		createNodes := `
        UNWIND $nodes AS node
        CREATE (u:Ubicacion)
        SET u = node
        `
		if _, err := tx.Run(ctx, createNodes, map[string]any{"nodes": nodeParams(data.Nodes)}); err != nil {
			return nil, fmt.Errorf("error creating campus nodes: %w", err)
		}

		createEdges := `
        UNWIND $edges AS e
        MATCH (a:Ubicacion {id: e.from}), (b:Ubicacion {id: e.to})
        CREATE (a)-[:CONECTA {distancia: e.distance, bidireccional: e.bidirectional, orden: e.orden}]->(b)
        `
		if _, err := tx.Run(ctx, createEdges, map[string]any{"edges": edgeParams(data.Edges)}); err != nil {
			return nil, fmt.Errorf("error creating campus edges: %w", err)
		}

		createBlocks := `
        UNWIND $blocks AS bp
        MATCH (a:Ubicacion {id: bp.from}), (b:Ubicacion {id: bp.to})
        CREATE (a)-[:BLOQUEA {motivo: bp.reason, temporal: bp.temporary, orden: bp.orden}]->(b)
        `
		if _, err := tx.Run(ctx, createBlocks, map[string]any{"blocks": blockParams(data.BlockedPaths)}); err != nil {
			return nil, fmt.Errorf("error creating blocked paths: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("error in ImportCampus: %w", err)
	}
	return nil
}
