package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDoc() map[string]any {
	return map[string]any{
		"model": "test",
		"particles": []any{
			map[string]any{
				"name": "~X3", "pdg": 9000103, "mass": 1200.0, "spin": 1, "color": 3,
			},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	assert.Empty(t, ValidateDocument(validDoc()))
}

func TestValidateDocument_Violations(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"empty model name", func(doc map[string]any) { doc["model"] = "" }},
		{"missing particles", func(doc map[string]any) { delete(doc, "particles") }},
		{"empty particle list", func(doc map[string]any) { doc["particles"] = []any{} }},
		{"zero mass", func(doc map[string]any) { particle(doc)["mass"] = 0.0 }},
		{"negative mass", func(doc map[string]any) { particle(doc)["mass"] = -1.0 }},
		{"zero pdg", func(doc map[string]any) { particle(doc)["pdg"] = 0 }},
		{"unsupported color", func(doc map[string]any) { particle(doc)["color"] = 5 }},
		{"spin out of range", func(doc map[string]any) { particle(doc)["spin"] = 7 }},
		{"empty name", func(doc map[string]any) { particle(doc)["name"] = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDoc()
			tc.mutate(doc)
			errs := ValidateDocument(doc)
			assert.NotEmpty(t, errs, "expected a schema violation")
		})
	}
}

func TestSchemaError_Error(t *testing.T) {
	e := SchemaError{Path: "particles.0.mass", Message: "invalid value"}
	assert.Equal(t, "particles.0.mass: invalid value", e.Error())

	bare := SchemaError{Message: "top-level problem"}
	assert.Equal(t, "top-level problem", bare.Error())
}

func particle(doc map[string]any) map[string]any {
	return doc["particles"].([]any)[0].(map[string]any)
}
