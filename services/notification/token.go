package notification

import "strings"

// ExpoTokenPrefix is the prefix every real Expo push token starts with.
const ExpoTokenPrefix = "ExponentPushToken["

// DevPlaceholderToken is the literal token development builds register when
// running without push credentials.
const DevPlaceholderToken = "DEVELOPMENT_TOKEN_PLACEHOLDER"

// devTokenMarkers are substrings that mark a token as a development or test
// placeholder rather than a real device registration.
var devTokenMarkers = []string{
	"Development_Mode",
	"DevelopmentMode",
	"TestToken",
}

// TokenClass classifies a stored push token.
type TokenClass int

const (
	// TokenInvalid covers empty, missing or malformed tokens.
	TokenInvalid TokenClass = iota
	// TokenDevelopment covers placeholder tokens from dev/test builds.
	TokenDevelopment
	// TokenValid is a real deliverable Expo token.
	TokenValid
)

// ClassifyToken buckets a stored push token into valid / development / invalid.
func ClassifyToken(token string) TokenClass {
	if token == "" {
		return TokenInvalid
	}
	if token == DevPlaceholderToken {
		return TokenDevelopment
	}
	for _, marker := range devTokenMarkers {
		if strings.Contains(token, marker) {
			return TokenDevelopment
		}
	}
	if !strings.HasPrefix(token, ExpoTokenPrefix) {
		return TokenInvalid
	}
	return TokenValid
}

// IsDeliverableToken reports whether a token should be included in a push
// batch.
func IsDeliverableToken(token string) bool {
	return ClassifyToken(token) == TokenValid
}
