package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "rolegate"

// Claims is the payload of an access token
type Claims struct {
	jwt.RegisteredClaims
	Account string `json:"account"`
	Role    string `json:"role"`
}
