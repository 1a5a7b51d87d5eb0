package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"collabhub/internal/core/domain"
)

// Authenticator verifies HS256 bearer tokens issued by the identity
// service. The subject is the actor id and the role claim its role. Tokens
// are never minted here.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Parse validates raw and returns the actor it identifies.
func (a *Authenticator) Parse(raw string) (domain.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	var claims actorClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Actor{}, domain.Unauthorized("token has expired")
		}
		return domain.Actor{}, domain.Unauthorized("invalid token")
	}
	actor := domain.Actor{ID: claims.Subject, Role: domain.Role(claims.Role)}
	if actor.ID == "" || !actor.Role.Valid() {
		return domain.Actor{}, domain.Unauthorized("invalid token claims")
	}
	return actor, nil
}

type actorKey struct{}

func withActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// actorFrom returns the authenticated actor. Routes behind authenticate
// always have one.
func actorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey{}).(domain.Actor)
	return actor
}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	const bearer = "Bearer "
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearer) {
			h.writeError(w, r, domain.Unauthorized("bearer token is required"))
			return
		}
		actor, err := h.auth.Parse(strings.TrimSpace(header[len(bearer):]))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}
