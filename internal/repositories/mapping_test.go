package repositories

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_nav/internal/models"
)

func record(kv ...any) *neo4j.Record {
	r := &neo4j.Record{}
	for i := 0; i < len(kv); i += 2 {
		r.Keys = append(r.Keys, kv[i].(string))
		r.Values = append(r.Values, kv[i+1])
	}
	return r
}

func TestNodeFromRecord(t *testing.T) {
	rec := record(
		"id", "salon-2a", "type", "classroom", "label", "Salón 2A", "floor", int64(1),
		"x", int64(200), "y", 200.5, "width", 120.0, "height", nil, "salonId", int64(201),
	)

	node, err := nodeFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "salon-2a", node.ID)
	assert.Equal(t, models.NodeClassroom, node.Type)
	assert.Equal(t, 1, node.Floor)
	assert.Equal(t, 200.0, node.X)
	assert.Equal(t, 200.5, node.Y)
	require.NotNil(t, node.Width)
	assert.Equal(t, 120.0, *node.Width)
	assert.Nil(t, node.Height)
	require.NotNil(t, node.SalonID)
	assert.Equal(t, 201, *node.SalonID)
}

func TestNodeFromRecordErrors(t *testing.T) {
	_, err := nodeFromRecord(record("id", nil))
	assert.ErrorContains(t, err, `"id" is null`)

	_, err = nodeFromRecord(record(
		"id", "a", "type", "corridor", "label", "A", "floor", "cero",
	))
	assert.ErrorContains(t, err, "expected number")
}

func TestEdgeAndBlockFromRecord(t *testing.T) {
	edge, err := edgeFromRecord(record("from", "a", "to", "b", "distance", int64(15), "bidirectional", true))
	require.NoError(t, err)
	assert.Equal(t, models.CampusEdge{From: "a", To: "b", Distance: 15, Bidirectional: true}, edge)

	block, err := blockFromRecord(record("from", "b", "to", "a", "reason", "obras", "temporary", false))
	require.NoError(t, err)
	assert.Equal(t, models.BlockedPath{From: "b", To: "a", Reason: "obras"}, block)
}

func TestParamsKeepDeclarationOrder(t *testing.T) {
	width := 40.0
	nodes := nodeParams([]models.CampusNode{
		{ID: "a", Type: models.NodeStairs, Label: "A", Width: &width},
		{ID: "b", Type: models.NodePatio, Label: "B", Floor: 1},
	})
	require.Len(t, nodes, 2)
	assert.Equal(t, int64(0), nodes[0]["orden"])
	assert.Equal(t, 40.0, nodes[0]["ancho"])
	assert.NotContains(t, nodes[1], "ancho")
	assert.Equal(t, int64(1), nodes[1]["piso"])

	edges := edgeParams([]models.CampusEdge{{From: "a", To: "b", Distance: 3}})
	assert.Equal(t, false, edges[0]["bidirectional"])

	blocks := blockParams([]models.BlockedPath{{From: "b", To: "a", Temporary: true}})
	assert.Equal(t, true, blocks[0]["temporary"])
}

func TestCountValue(t *testing.T) {
	// MATCH sin coincidencias igual devuelve una fila con count = 0
	n, err := countValue(&neo4j.EagerResult{Records: []*neo4j.Record{record("saved", int64(0))}}, "saved")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = countValue(&neo4j.EagerResult{Records: []*neo4j.Record{record("removed", int64(1))}}, "removed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = countValue(&neo4j.EagerResult{}, "saved")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = countValue(&neo4j.EagerResult{Records: []*neo4j.Record{record("other", int64(1))}}, "saved")
	assert.Error(t, err)
}
