package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyTokenValid(t *testing.T) {
	require.Equal(t, TokenValid, ClassifyToken("ExponentPushToken[abc123]"))
	require.True(t, IsDeliverableToken("ExponentPushToken[abc123]"))
}

func TestClassifyTokenEmpty(t *testing.T) {
	require.Equal(t, TokenInvalid, ClassifyToken(""))
	require.False(t, IsDeliverableToken(""))
}

func TestClassifyTokenDevelopmentMarkers(t *testing.T) {
	// Every marker must be rejected whether bare or embedded in an otherwise
	// well-formed token.
	for _, token := range []string{
		"Development_Mode",
		"DevelopmentMode",
		"TestToken",
		"ExponentPushToken[Development_Mode]",
		"ExponentPushToken[DevelopmentMode]",
		"ExponentPushToken[TestToken]",
	} {
		require.Equal(t, TokenDevelopment, ClassifyToken(token), "token %q", token)
		require.False(t, IsDeliverableToken(token), "token %q", token)
	}
}

func TestClassifyTokenLiteralPlaceholder(t *testing.T) {
	require.Equal(t, TokenDevelopment, ClassifyToken(DevPlaceholderToken))
}

func TestClassifyTokenWrongPrefix(t *testing.T) {
	require.Equal(t, TokenInvalid, ClassifyToken("fcm-token-abc123"))
	require.Equal(t, TokenInvalid, ClassifyToken("exponentpushtoken[abc]"))
}
