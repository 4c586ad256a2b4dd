package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Resolver extracts a verified subject from a bearer token when a JWKS file
// is configured. Without one it is a no-op and the request body's user_id is
// authoritative. Token handling stops here; the decision engine never sees
// credentials.
type Resolver struct {
	keys jwk.Set
}

// NewResolver loads the verification key set from a JWKS file. An empty path
// yields a disabled resolver.
func NewResolver(jwksPath string) (*Resolver, error) {
	if jwksPath == "" {
		return &Resolver{}, nil
	}
	set, err := jwk.ReadFile(jwksPath)
	if err != nil {
		return nil, fmt.Errorf("load jwks %s: %w", jwksPath, err)
	}
	return &Resolver{keys: set}, nil
}

// Subject returns the verified bearer subject. It returns "" without error
// when no token is presented or the resolver is disabled; a presented but
// unverifiable token is an error.
func (r *Resolver) Subject(req *http.Request) (string, error) {
	if r == nil || r.keys == nil {
		return "", nil
	}
	h := req.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", nil
	}
	tok, err := jwt.ParseString(strings.TrimPrefix(h, "Bearer "), jwt.WithKeySet(r.keys))
	if err != nil {
		return "", fmt.Errorf("verify bearer token: %w", err)
	}
	sub, ok := tok.Subject()
	if !ok {
		return "", fmt.Errorf("bearer token has no subject")
	}
	return sub, nil
}
