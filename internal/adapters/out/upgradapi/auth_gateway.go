package upgradapi

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/core/domain/model/session"
	"storefront/internal/core/ports"
)

// AuthGateway signs users in and up against the remote API.
type AuthGateway struct {
	client     *Client
	defaultTTL time.Duration
	now        func() time.Time
}

// NewAuthGateway creates the gateway. defaultTTL bounds the session
// lifetime when the issued token carries no readable expiry.
func NewAuthGateway(client *Client, defaultTTL time.Duration) *AuthGateway {
	return &AuthGateway{
		client:     client,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SignIn exchanges credentials for a token and role. The token's exp
// claim, read without verifying the signature since the token belongs to
// the remote issuer, bounds the session; tokens without one get the
// configured TTL.
func (g *AuthGateway) SignIn(ctx context.Context, username, password string) (ports.Credentials, error) {
	var resp signInResponse
	err := g.client.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "auth_signin",
		path:     "/auth/signin",
		body:     signInRequest{Username: username, Password: password},
	}, &resp)
	if err != nil {
		return ports.Credentials{}, err
	}

	return ports.Credentials{
		Token:     resp.Token,
		Role:      session.RoleFromString(resp.Role),
		ExpiresAt: g.tokenExpiry(resp.Token),
	}, nil
}

type signUpRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// SignUp registers a new account.
func (g *AuthGateway) SignUp(ctx context.Context, req ports.SignUpRequest) error {
	return g.client.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "auth_signup",
		path:     "/auth/signup",
		body: signUpRequest{
			Email:         req.Email,
			Password:      req.Password,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			ContactNumber: req.ContactNumber,
		},
	}, nil)
}

func (g *AuthGateway) tokenExpiry(token string) time.Time {
	fallback := g.now().Add(g.defaultTTL)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}
