package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"void-apparel/models"
)

// ParsePreviewRequest validates an untrusted preview body and applies defaults.
// An empty body is treated as {}. Every problem found is reported in one *ValidationError.
func ParsePreviewRequest(body []byte) (*models.PreviewRequest, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if !gjson.ValidBytes(body) {
		return nil, &ValidationError{Issues: []string{"body: Invalid JSON"}}
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &ValidationError{Issues: []string{"body: Expected object, received " + jsonKind(root)}}
	}

	if issues := checkPreviewShape(root); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	var parsed models.PreviewRequestBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ValidationError{Issues: []string{"body: " + err.Error()}}
	}
	if err := validateStruct(parsed); err != nil {
		return nil, err
	}

	return applyPreviewDefaults(parsed), nil
}

// checkPreviewShape type-checks every known field and reports missing required graphic fields
func checkPreviewShape(root gjson.Result) []string {
	var issues []string

	for _, field := range []string{"garmentType", "baseColor", "fabric", "style"} {
		issues = appendTypeIssue(issues, field, root.Get(field), gjson.String)
	}

	graphics := root.Get("graphics")
	if !graphics.Exists() {
		return issues
	}
	if !graphics.IsArray() {
		return append(issues, "graphics: Expected array, received "+jsonKind(graphics))
	}

	for i, g := range graphics.Array() {
		path := fmt.Sprintf("graphics[%d]", i)
		if !g.IsObject() {
			issues = append(issues, path+": Expected object, received "+jsonKind(g))
			continue
		}

		name := g.Get("name")
		if !name.Exists() {
			issues = append(issues, path+".name: Required")
		} else {
			issues = appendTypeIssue(issues, path+".name", name, gjson.String)
		}
		issues = appendTypeIssue(issues, path+".type", g.Get("type"), gjson.String)
		issues = appendTypeIssue(issues, path+".scale", g.Get("scale"), gjson.Number)

		pos := g.Get("position")
		if !pos.Exists() {
			continue
		}
		if !pos.IsObject() {
			issues = append(issues, path+".position: Expected object, received "+jsonKind(pos))
			continue
		}
		for _, axis := range []string{"x", "y"} {
			v := pos.Get(axis)
			if !v.Exists() {
				issues = append(issues, path+".position."+axis+": Required")
				continue
			}
			issues = appendTypeIssue(issues, path+".position."+axis, v, gjson.Number)
		}
	}
	return issues
}

// appendTypeIssue records a type mismatch for a present value. Absent values are fine.
func appendTypeIssue(issues []string, path string, v gjson.Result, want gjson.Type) []string {
	if !v.Exists() || v.Type == want {
		return issues
	}
	expected := "string"
	if want == gjson.Number {
		expected = "number"
	}
	return append(issues, fmt.Sprintf("%s: Expected %s, received %s", path, expected, jsonKind(v)))
}

func jsonKind(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		if v.IsArray() {
			return "array"
		}
		return "object"
	}
}

func applyPreviewDefaults(body models.PreviewRequestBody) *models.PreviewRequest {
	req := &models.PreviewRequest{
		GarmentType: stringOrDefault(body.GarmentType, string(models.DefaultGarmentType)),
		BaseColor:   stringOrDefault(body.BaseColor, models.DefaultBaseColor),
		Fabric:      stringOrDefault(body.Fabric, models.DefaultFabric),
		Style:       stringOrDefault(body.Style, models.DefaultStyle),
		Graphics:    make([]models.PreviewGraphicSummary, 0, len(body.Graphics)),
	}
	for _, g := range body.Graphics {
		summary := models.PreviewGraphicSummary{
			Name:     *g.Name,
			Position: g.Position,
			Scale:    g.Scale,
		}
		if g.Type != nil {
			summary.Type = *g.Type
		}
		req.Graphics = append(req.Graphics, summary)
	}
	return req
}

func stringOrDefault(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return *v
}
