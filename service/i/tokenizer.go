package i

import (
	"time"
)

// Tokenizer issues and verifies the bearer tokens protecting operator routes.
type Tokenizer interface {
	// Generate signs claims into a token valid for ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
