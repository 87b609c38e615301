package export

import "fmt"

// EmbedSnippets are ready-to-paste integration snippets for a finalized bot.
type EmbedSnippets struct {
	IFrame string `json:"iframe"`
	Widget string `json:"widget"`
	REST   string `json:"rest"`
}

// BuildEmbedSnippets renders the three embed variants for a bot. frontendURL
// hosts the chat UI; apiURL is this service's public base. The REST example
// targets the chat endpoint, which addresses bots by collection name.
func BuildEmbedSnippets(frontendURL, apiURL, botID, collection string) EmbedSnippets {
	return EmbedSnippets{
		IFrame: fmt.Sprintf(
			`<iframe src="%s/bot/%s" width="400" height="600" frameborder="0"></iframe>`,
			frontendURL, botID),
		Widget: fmt.Sprintf(
			`<script src="%s/widget.js" data-bot-id="%s" async></script>`,
			frontendURL, botID),
		REST: fmt.Sprintf(
			`curl -X POST %s/api/v1/chat -H 'Content-Type: application/json' -d '{"collection_name": "%s", "query": "Why should I hire them?"}'`,
			apiURL, collection),
	}
}
