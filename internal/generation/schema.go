package generation

import "google.golang.org/genai"

// QuizSchema describes the JSON shape of domain.QuizData for schema-constrained
// output. Every call returns a fresh value.
func QuizSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A creative title for the quiz",
			},
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question": {Type: genai.TypeString},
						"options": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "List of 4 multiple choice options",
						},
						"correctAnswer": {
							Type:        genai.TypeString,
							Description: "Must match one of the options exactly",
						},
						"explanation": {
							Type:        genai.TypeString,
							Description: "Brief explanation of why the answer is correct",
						},
					},
					Required: []string{"question", "options", "correctAnswer", "explanation"},
				},
			},
		},
		Required: []string{"title", "questions"},
	}
}
