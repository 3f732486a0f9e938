package generator

import "github.com/pmma/lifeskills/internal/llm"

// ModuleSchema defines the JSON schema for LLM life skill generation
// responses. It covers the generated content only; id, title, slug, and
// description are assembled by the generator.
var ModuleSchema = &llm.Schema{
	Name:        "life-skill-module",
	Description: "A complete life skills training module for martial arts students",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"parable": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "The story title",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "The full story text, 300-500 words",
					},
					"teachingPoints": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    5,
						"maxItems":    5,
						"description": "Exactly 5 lessons the story teaches",
					},
				},
				"required":             []any{"title", "content", "teachingPoints"},
				"additionalProperties": false,
			},
			"explanations": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"young": explanationSchema("Ages 6-10"),
					"teen":  explanationSchema("Ages 11-17"),
					"adult": explanationSchema("Ages 18+"),
				},
				"required":             []any{"young", "teen", "adult"},
				"additionalProperties": false,
			},
			"quotes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string"},
						"text": map[string]any{"type": "string"},
						"author": map[string]any{
							"type": "string",
						},
						"application": map[string]any{
							"type":        "string",
							"description": "How the quote applies to martial arts training",
						},
						"category": map[string]any{
							"type": "string",
							"enum": []any{"martial-arts", "philosophy", "leadership"},
						},
					},
					"required":             []any{"id", "text", "author", "application", "category"},
					"additionalProperties": false,
				},
				"minItems":    6,
				"maxItems":    6,
				"description": "Exactly 6 quotes: 2 martial-arts, 2 philosophy, 2 leadership",
			},
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"ageGroup": map[string]any{
							"type": "string",
							"enum": []any{"young", "teen", "adult", "all"},
						},
					},
					"required":             []any{"id", "title", "description", "ageGroup"},
					"additionalProperties": false,
				},
				"minItems": 5,
				"maxItems": 5,
			},
			"exercises": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string"},
						"title": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"foundational", "physical", "advanced"},
						},
						"duration": map[string]any{
							"type":        "integer",
							"minimum":     5,
							"maximum":     45,
							"description": "Duration in minutes",
						},
						"materials": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"process": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    1,
							"description": "Step-by-step instructions",
						},
						"ageGroup": map[string]any{
							"type": "string",
							"enum": []any{"young", "teen", "adult", "all"},
						},
						"instructorNotes": map[string]any{
							"type":        "string",
							"description": "Teaching tips for instructors",
						},
					},
					"required":             []any{"id", "title", "type", "duration", "materials", "process", "ageGroup", "instructorNotes"},
					"additionalProperties": false,
				},
				"minItems": 5,
				"maxItems": 5,
			},
		},
		"required":             []any{"parable", "explanations", "quotes", "lessons", "exercises"},
		"additionalProperties": false,
	},
}

func explanationSchema(audience string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": audience,
		"properties": map[string]any{
			"definition": map[string]any{"type": "string"},
			"keyConcepts": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 5,
			},
		},
		"required":             []any{"definition", "keyConcepts"},
		"additionalProperties": false,
	}
}
