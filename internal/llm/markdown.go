package llm

import "strings"

const codeFence = "```"

// StripCodeFence removes a markdown code fence wrapped around a model
// response and returns the body of the first fenced block. A language tag
// right after the opening fence (```json) is dropped with it, and anything
// after the closing fence is discarded. Text without a leading fence is
// only trimmed.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, codeFence) {
		return content
	}

	content = strings.TrimPrefix(content, codeFence)
	content = strings.TrimLeftFunc(content, isLanguageTagRune)

	if idx := strings.Index(content, codeFence); idx >= 0 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}

func isLanguageTagRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '+'
}
