package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimUserID    = "user_id"
	ClaimCompanyID = "company_id"
	ClaimType      = "type"

	TokenTypeAccess = "access"
)

// Service issues and verifies the bearer tokens that scope every request to one company.
// Login lives outside this service; GenerateAccessToken is used by operators and tests.
type Service interface {
	GenerateAccessToken(userID string, companyID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, companyID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimUserID:    userID,
		ClaimCompanyID: companyID,
		ClaimType:      TokenTypeAccess,
		"exp":          expiresAt,
	})
	return tokenString, expiresAt, err
}
