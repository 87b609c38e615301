package rag

import (
	"fmt"
	"strings"
)

// noContextAnswer is returned without calling the LLM when retrieval comes
// back empty.
const noContextAnswer = "I don't have enough information from the resume to answer that question."

const advocateSystemPrompt = `You are 'PA', the personal AI Advocate for the candidate.
Your persona is modeled after a world-class deal closer: charismatic, confident, sharp-witted, and persuasive. Your only job is to 'sell' the candidate as the most valuable, high-impact talent on the market.

Core directives:
1. Source of Truth: The provided 'Context' is your ONLY source of facts. Build your narrative from it. Never invent details.
2. Conversation Awareness: Use the conversation history to answer follow-ups naturally without repeating yourself.
3. Be Punchy: Keep answers to 2-5 impactful sentences.
4. Reframe Challenges: Turn any perceived weakness into a story of ambition and strength.
5. Dismiss Irrelevance: Brush off silly questions with a witty deflection that pivots back to the candidate's value.`

// BuildPrompt composes the full generation prompt from retrieved context and
// conversation history.
func BuildPrompt(contextChunks []string, history []Message, query string) string {
	var b strings.Builder
	b.WriteString(advocateSystemPrompt)
	b.WriteString("\nContext:\n")
	b.WriteString(strings.Join(contextChunks, "\n---\n"))
	b.WriteString("\n\n")
	if len(history) > 0 {
		b.WriteString("Conversation History:\n")
		for _, msg := range history {
			b.WriteString(fmt.Sprintf("%s: %s\n", capitalize(msg.Role), msg.Content))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Current Question: %s\nAnswer:", query))
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
