package catalog

// lessonsSchema validates lessons.json before anything renders from it.
// Unknown fields are allowed so older exports keep loading; the fields
// the app reads are pinned down.
var lessonsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer", "minimum": 1},
			"title":    map[string]any{"type": "string", "minLength": 1},
			"category": map[string]any{"type": "string", "minLength": 1},
			"content":  map[string]any{"type": "string"},
			"code":     map[string]any{"type": "string"},
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt":       map[string]any{"type": "string", "minLength": 1},
						"starter_code": map[string]any{"type": "string"},
						"hint":         map[string]any{"type": "string"},
						"solution":     map[string]any{"type": "string"},
					},
					"required": []any{"prompt"},
				},
			},
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 2,
						},
						"answer":      map[string]any{"type": "integer", "minimum": 0},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"text", "options", "answer"},
				},
			},
		},
		"required": []any{"id", "title", "category", "content"},
	},
}
