package llm

import (
	"github.com/tmc/langchaingo/prompts"
)

const sentimentSystemPrompt = `Classify journal text sentiment. Return label neg/neu/pos and score 0..1, calibrated around 0.5 neutral.
Answer with a single JSON object matching this schema and nothing else:
`

var reflectionPrompt = prompts.NewPromptTemplate(`
You are a gentle, concise journaling coach.
Write a 2-3 sentence reflection on the user's entry.
Be supportive, specific, and actionable. No emojis, no therapy claims.

Entry:
"""
{{.content}}
"""
Reflection:
`, []string{"content"})

const letterSystemPrompt = `You are a clinical, concise journaling analyst using CBT/ACT language. No therapy claims.
Answer with a single JSON object matching this schema and nothing else:
`

var letterUserPrompt = prompts.NewPromptTemplate(
	`Month: {{.month}}. From these dated journal snippets, produce a calm, non-fluffy monthly reflection with themes, wins, and next week focus as bullet items. Keep each item <= 14 words.

{{.corpus}}`,
	[]string{"month", "corpus"},
)
