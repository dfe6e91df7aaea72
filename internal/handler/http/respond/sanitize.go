package respond

import (
	"regexp"
)

var (
	// API key patterns. The Anthropic pattern is applied first because it is
	// the more specific of the two.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// The OpenAI pattern must not re-match already-masked strings.
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// Order matters: mask the more specific key format first
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")

	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
