package auth

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "auth-test-secret")

	if err := InitJWTSecret(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestGenerateAndVerifyToken(t *testing.T) {
	ident := Identity{
		UID:     "uid-1",
		Email:   "user@example.com",
		Name:    "User",
		Picture: "http://img/user.png",
	}

	token, err := GenerateToken(ident)
	require.NoError(t, err)

	decoded, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, ident, decoded)
}

func TestVerifyTokenExpired(t *testing.T) {
	token := signedToken(t, jwtSecret, jwt.MapClaims{
		"uid":   "uid-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	_, err := VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token := signedToken(t, "some-other-secret", jwt.MapClaims{
		"uid":   "uid-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenMissingIdentityClaims(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"no uid", jwt.MapClaims{"email": "user@example.com", "exp": time.Now().Add(time.Hour).Unix()}},
		{"no email", jwt.MapClaims{"uid": "uid-1", "exp": time.Now().Add(time.Hour).Unix()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifyToken(signedToken(t, jwtSecret, tc.claims))
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestVerifyTokenRejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid":   "uid-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
