package repositories

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"campus_nav/internal/models"
)

func nodeFromRecord(record *neo4j.Record) (models.CampusNode, error) {
	var node models.CampusNode
	var err error

	if node.ID, err = stringValue(record, "id"); err != nil {
		return node, err
	}
	nodeType, err := stringValue(record, "type")
	if err != nil {
		return node, err
	}
	node.Type = models.NodeType(nodeType)
	if node.Label, err = stringValue(record, "label"); err != nil {
		return node, err
	}
	floor, err := numberValue(record, "floor")
	if err != nil {
		return node, err
	}
	node.Floor = int(floor)
	if node.X, err = numberValue(record, "x"); err != nil {
		return node, err
	}
	if node.Y, err = numberValue(record, "y"); err != nil {
		return node, err
	}
	if node.Width, err = optionalNumber(record, "width"); err != nil {
		return node, err
	}
	if node.Height, err = optionalNumber(record, "height"); err != nil {
		return node, err
	}
	salon, err := optionalNumber(record, "salonId")
	if err != nil {
		return node, err
	}
	if salon != nil {
		id := int(*salon)
		node.SalonID = &id
	}
	return node, nil
}

func edgeFromRecord(record *neo4j.Record) (models.CampusEdge, error) {
	var edge models.CampusEdge
	var err error

	if edge.From, err = stringValue(record, "from"); err != nil {
		return edge, err
	}
	if edge.To, err = stringValue(record, "to"); err != nil {
		return edge, err
	}
	if edge.Distance, err = numberValue(record, "distance"); err != nil {
		return edge, err
	}
	edge.Bidirectional, _, err = neo4j.GetRecordValue[bool](record, "bidirectional")
	if err != nil {
		return edge, fmt.Errorf("edge %s->%s: %w", edge.From, edge.To, err)
	}
	return edge, nil
}

func blockFromRecord(record *neo4j.Record) (models.BlockedPath, error) {
	var block models.BlockedPath
	var err error

	if block.From, err = stringValue(record, "from"); err != nil {
		return block, err
	}
	if block.To, err = stringValue(record, "to"); err != nil {
		return block, err
	}
	if block.Reason, _, err = neo4j.GetRecordValue[string](record, "reason"); err != nil {
		return block, err
	}
	if block.Temporary, _, err = neo4j.GetRecordValue[bool](record, "temporary"); err != nil {
		return block, err
	}
	return block, nil
}

func stringValue(record *neo4j.Record, key string) (string, error) {
	value, isNil, err := neo4j.GetRecordValue[string](record, key)
	if err != nil {
		return "", err
	}
	if isNil {
		return "", fmt.Errorf("record field %q is null", key)
	}
	return value, nil
}

// numberValue acepta enteros y flotantes; Neo4j guarda ambos según cómo se escribieron.
func numberValue(record *neo4j.Record, key string) (float64, error) {
	value, ok := record.Get(key)
	if !ok {
		return 0, fmt.Errorf("record has no field %q", key)
	}
	switch v := value.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case nil:
		return 0, fmt.Errorf("record field %q is null", key)
	default:
		return 0, fmt.Errorf("record field %q has type %T, expected number", key, value)
	}
}

func optionalNumber(record *neo4j.Record, key string) (*float64, error) {
	if value, ok := record.Get(key); !ok || value == nil {
		return nil, nil
	}
	v, err := numberValue(record, key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func nodeParams(nodes []models.CampusNode) []map[string]any {
	params := make([]map[string]any, 0, len(nodes))
	for i, n := range nodes {
		p := map[string]any{
			"id":       n.ID,
			"tipo":     string(n.Type),
			"etiqueta": n.Label,
			"piso":     int64(n.Floor),
			"x":        n.X,
			"y":        n.Y,
			"orden":    int64(i),
		}
		if n.Width != nil {
			p["ancho"] = *n.Width
		}
		if n.Height != nil {
			p["alto"] = *n.Height
		}
		if n.SalonID != nil {
			p["salon_id"] = int64(*n.SalonID)
		}
		params = append(params, p)
	}
	return params
}

func edgeParams(edges []models.CampusEdge) []map[string]any {
	params := make([]map[string]any, 0, len(edges))
	for i, e := range edges {
		params = append(params, map[string]any{
			"from":          e.From,
			"to":            e.To,
			"distance":      e.Distance,
			"bidirectional": e.Bidirectional,
			"orden":         int64(i),
		})
	}
	return params
}

func blockParams(blocks []models.BlockedPath) []map[string]any {
	params := make([]map[string]any, 0, len(blocks))
	for i, b := range blocks {
		params = append(params, map[string]any{
			"from":      b.From,
			"to":        b.To,
			"reason":    b.Reason,
			"temporary": b.Temporary,
			"orden":     int64(i),
		})
	}
	return params
}
