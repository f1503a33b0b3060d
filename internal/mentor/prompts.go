package mentor

import (
	"fmt"

	"github.com/ellisvega/mlmuse/internal/saved"
)

func (m *Mentor) systemPrompt() string {
	base := `You are mlmuse, a pragmatic machine-learning project mentor for students.

## Guidelines
- Recommend projects that can actually be finished: scope to public datasets, free-tier compute, and well-documented libraries.
- Prefer simple baselines first (logistic regression, a small fine-tune) before anything exotic.
- Be concrete: name datasets, libraries, metrics and milestones rather than vague directions.
- Be encouraging but honest about difficulty and time cost.
- Write Markdown.`

	if m.profile != nil {
		base += "\n\n" + m.profile.ToPrompt()
	}
	return base
}

func (m *Mentor) chatSystemPrompt(item saved.Item) string {
	return m.systemPrompt() + fmt.Sprintf(`

## Current project
The student is working on this proposal and your answers must stay grounded in it:
- Title: %s
- Difficulty: %s
- Summary: %s

Answer questions as their advisor on this project. Keep replies short enough to read in a terminal.`,
		item.Title, item.Difficulty, item.Summary)
}

func ideasPrompt(topic string, difficulty Difficulty, count int) string {
	return fmt.Sprintf(`Propose %d distinct machine-learning project ideas about "%s" at %s difficulty.

For each idea give:
- "title": a short, specific project name
- "summary": 2-3 sentences on what gets built and why it is interesting
- "difficulty": one of beginner, intermediate, advanced
- "tags": a few lowercase topical tags (e.g. "nlp", "vision", "time-series")
- "datasets": named public datasets the project can start from

Return only the JSON array, ordered from most to least recommended.`, count, topic, difficulty)
}

func architecturePrompt(item saved.Item) string {
	return fmt.Sprintf(`Write an architecture guide for this student project:

Title: %s
Summary: %s
Difficulty: %s

Cover: the data pipeline, the model (start with the simplest thing that could work), training and evaluation (name the metrics), and how to demo the result. Use Markdown sections. Keep it under a page.`,
		item.Title, item.Summary, item.Difficulty)
}

func starterCodePrompt(item saved.Item) string {
	return fmt.Sprintf(`Write starter code for this student project:

Title: %s
Summary: %s
Difficulty: %s

Produce one well-commented Python script the student can run and then grow: data loading, a baseline model, a training loop, an evaluation print-out. Use widely taught libraries. Wrap the code in a fenced block and add a short "next steps" list after it.`,
		item.Title, item.Summary, item.Difficulty)
}

func resourcesPrompt(item saved.Item) string {
	return fmt.Sprintf(`Find current learning resources for this student project:

Title: %s
Summary: %s

List tutorials, courses, papers and reference implementations that exist today, grouped by type, each with a one-line reason to read it. Prefer free resources.`,
		item.Title, item.Summary)
}

func illustratePrompt(item saved.Item) string {
	return fmt.Sprintf(`A simple flat illustration for a student project titled "%s": %s. Clean shapes, few colors, no text in the image.`,
		item.Title, item.Summary)
}

func scaffoldPrompt(item saved.Item) string {
	return fmt.Sprintf(`Create the starter file tree for this student project:

Title: %s
Summary: %s
Difficulty: %s

Return JSON with a "files" array; each entry has "path" (relative, e.g. "src/train.py") and "content" (the complete file). Include a README.md with setup steps, a requirements.txt, and runnable Python source with a baseline model. Keep the tree small — this is a starting point, not a finished project.`,
		item.Title, item.Summary, item.Difficulty)
}
