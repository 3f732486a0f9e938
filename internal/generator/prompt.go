package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert martial arts instructor and curriculum developer. You create professional-quality life skills training content that combines martial arts practice with character development. Always respond with valid JSON in the exact format requested.`

// buildUserMessage constructs the generation prompt for a request. The
// topic is assumed to be trimmed and non-empty; id is the module id the
// generated sub-entity ids must be prefixed with.
func buildUserMessage(req Request, id string) string {
	topic := req.Topic
	lower := strings.ToLower(topic)

	description := req.Description
	if description == "" {
		description = DefaultDescription(topic)
	}

	var b strings.Builder

	b.WriteString("Create a complete life skills training module for martial arts students.\n\n")
	fmt.Fprintf(&b, "TOPIC: %s\n", topic)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n", description)
	fmt.Fprintf(&b, "AGE GROUP FOCUS: %s\n", req.AgeGroup)
	fmt.Fprintf(&b, "DIFFICULTY LEVEL: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "FOCUS AREA: %s\n", req.FocusArea)

	b.WriteString("\nThe module has five components:\n")

	fmt.Fprintf(&b, `
1. PARABLE (300-500 words):
Write an engaging martial arts story that teaches %s. Include:
- Dojo setting with a master and students
- A clear conflict that requires %s to resolve
- Dialogue and martial arts techniques
- Character growth and a lesson learned
- A clear moral that connects to real life
- Exactly 5 teaching points
`, topic, lower)

	fmt.Fprintf(&b, `
2. AGE-APPROPRIATE EXPLANATIONS:
Create three versions explaining %s:
- YOUNG (6-10): simple, fun language with examples kids understand
- TEEN (11-17): practical applications for school, friends, sports
- ADULT (18+): professional context, deeper philosophy, leadership aspects
Each needs 4-5 key concepts in bullet points.
`, topic)

	fmt.Fprintf(&b, `
3. INSPIRATIONAL QUOTES (exactly 6):
Generate quotes about %s from different sources:
- 2 from martial arts masters/philosophy (category "martial-arts")
- 2 from general philosophy/wisdom (category "philosophy")
- 2 from leadership/character development (category "leadership")
Each quote needs a practical application to martial arts training.
`, topic)

	fmt.Fprintf(&b, `
4. PRACTICAL LESSONS (exactly 5):
Create actionable lessons students can apply:
- Make them specific to martial arts training
- Vary age groups (some "all", some specific)
- Focus on how to practice %s, not just what %s is
- Connect to situations outside the dojo
`, lower, lower)

	fmt.Fprintf(&b, `
5. MARTIAL ARTS EXERCISES (exactly 5):
Design hands-on activities that physically teach %s:
- Mix of foundational (discussion), physical (movement), advanced (scenarios)
- Include duration in minutes (between 5 and 45), materials needed, and a step-by-step process
- Age-appropriate variations
- Instructor notes with teaching tips
- Connect physical practice to character development
`, topic)

	fmt.Fprintf(&b, `
Use %q as the id prefix: quotes are %q through %q, lessons %q through %q, exercises %q through %q.
`, id,
		id+"-quote-1", id+"-quote-6",
		id+"-lesson-1", id+"-lesson-5",
		id+"-exercise-1", id+"-exercise-5")

	b.WriteString(`
Ensure all content is appropriate for a martial arts training environment, respectful and inclusive, practical and actionable, and of professional quality that instructors can use directly.`)

	return b.String()
}
