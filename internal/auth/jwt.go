package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret string

// Verification failures are split so the middleware can answer 401 for an
// expired credential and 403 for everything else (bad signature, wrong
// algorithm, garbage token).
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Identity is the decoded claim set of a verified bearer token.
type Identity struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

func GenerateToken(ident Identity) (string, error) {
	claims := jwt.MapClaims{
		"uid":     ident.UID,
		"email":   ident.Email,
		"name":    ident.Name,
		"picture": ident.Picture,
		"exp":     time.Now().Add(time.Hour * 168).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Identity{}, ErrTokenInvalid
	}

	uid, _ := claims["uid"].(string)
	email, _ := claims["email"].(string)

	if uid == "" || email == "" {
		return Identity{}, ErrTokenInvalid
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return Identity{
		UID:     uid,
		Email:   email,
		Name:    name,
		Picture: picture,
	}, nil
}
