package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"void-apparel/models"
)

func requireValidationIssues(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Issues
}

func TestParsePreviewRequest_EmptyBodyUsesDefaults(t *testing.T) {
	for _, body := range []string{"", "   ", "{}"} {
		req, err := ParsePreviewRequest([]byte(body))
		require.NoError(t, err, "body %q", body)

		assert.Equal(t, "hoodie", req.GarmentType)
		assert.Equal(t, "#0a0a0a", req.BaseColor)
		assert.Equal(t, "Heavy Cotton", req.Fabric)
		assert.Equal(t, "Oversized", req.Style)
		assert.Empty(t, req.Graphics)
	}
}

func TestParsePreviewRequest_KeepsProvidedValues(t *testing.T) {
	body := `{"garmentType":"tee","baseColor":"#dc2626","fabric":"French Terry","style":"Slim",
		"graphics":[{"name":"Skull & Roses","type":"preset","position":{"x":50,"y":40},"scale":1.5}]}`

	req, err := ParsePreviewRequest([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "tee", req.GarmentType)
	assert.Equal(t, "#dc2626", req.BaseColor)
	assert.Equal(t, "French Terry", req.Fabric)
	assert.Equal(t, "Slim", req.Style)
	require.Len(t, req.Graphics, 1)
	g := req.Graphics[0]
	assert.Equal(t, "Skull & Roses", g.Name)
	assert.Equal(t, "preset", g.Type)
	require.NotNil(t, g.Position)
	assert.Equal(t, models.Position{X: 50, Y: 40}, *g.Position)
	require.NotNil(t, g.Scale)
	assert.Equal(t, 1.5, *g.Scale)
}

func TestParsePreviewRequest_BlankStringsFallBackToDefaults(t *testing.T) {
	req, err := ParsePreviewRequest([]byte(`{"garmentType":"","baseColor":"  "}`))
	require.NoError(t, err)
	assert.Equal(t, "hoodie", req.GarmentType)
	assert.Equal(t, "#0a0a0a", req.BaseColor)
}

func TestParsePreviewRequest_IgnoresUnknownFields(t *testing.T) {
	req, err := ParsePreviewRequest([]byte(`{"size":"XL","extra":{"a":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "hoodie", req.GarmentType)
}

func TestParsePreviewRequest_InvalidJSON(t *testing.T) {
	_, err := ParsePreviewRequest([]byte(`{"garmentType":`))
	issues := requireValidationIssues(t, err)
	assert.Equal(t, []string{"body: Invalid JSON"}, issues)
}

func TestParsePreviewRequest_NonObjectBody(t *testing.T) {
	_, err := ParsePreviewRequest([]byte(`[1,2]`))
	issues := requireValidationIssues(t, err)
	assert.Equal(t, []string{"body: Expected object, received array"}, issues)
}

func TestParsePreviewRequest_ReportsEveryIssue(t *testing.T) {
	body := `{"garmentType":42,"baseColor":null,"graphics":[{"type":"preset"},{"name":"Lotus","scale":"big","position":{"x":"1"}}]}`

	_, err := ParsePreviewRequest([]byte(body))
	issues := requireValidationIssues(t, err)

	assert.Equal(t, []string{
		"garmentType: Expected string, received number",
		"baseColor: Expected string, received null",
		"graphics[0].name: Required",
		"graphics[1].scale: Expected number, received string",
		"graphics[1].position.x: Expected number, received string",
		"graphics[1].position.y: Required",
	}, issues)
	assert.Contains(t, err.Error(), "graphics[0].name: Required, ")
}

func TestParsePreviewRequest_GraphicsMustBeArrayOfObjects(t *testing.T) {
	_, err := ParsePreviewRequest([]byte(`{"graphics":"skull"}`))
	assert.Equal(t, []string{"graphics: Expected array, received string"}, requireValidationIssues(t, err))

	_, err = ParsePreviewRequest([]byte(`{"graphics":[true]}`))
	assert.Equal(t, []string{"graphics[0]: Expected object, received boolean"}, requireValidationIssues(t, err))
}
