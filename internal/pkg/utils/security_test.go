package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	t.Run("Round Trip Returns Subject", func(t *testing.T) {
		token, err := GenerateJWT("user_client00001", "secret", time.Hour)
		require.NoError(t, err)

		userID, err := ParseJWT(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "user_client00001", userID)
	})

	t.Run("Wrong Secret Is Rejected", func(t *testing.T) {
		token, err := GenerateJWT("user_client00001", "secret", time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other")
		assert.Error(t, err)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		token, err := GenerateJWT("user_client00001", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, "secret")
		assert.Error(t, err)
	})

	t.Run("Non HMAC Token Is Rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user_x"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseJWT(signed, "secret")
		assert.Error(t, err)
	})
}
