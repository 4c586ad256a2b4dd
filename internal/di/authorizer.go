package di

import (
	"os"

	"github.com/QueryGate/pdp-go/internal/authz"
	"github.com/QueryGate/pdp-go/internal/directory"
)

// ProvideAuthorizer selects the decision backend. The default is the local
// role-grant engine over the supplied snapshot; PDP_AUTHZ=fga delegates to
// OpenFGA, PDP_AUTHZ=mock allows everything (dev only).
func ProvideAuthorizer(snap *directory.Snapshot) authz.Authorizer {
	switch os.Getenv("PDP_AUTHZ") {
	case "fga":
		cfg := authz.OpenFGAConfig{
			APIURL:   getenv("FGA_API_URL", "http://localhost:8080"),
			StoreID:  os.Getenv("FGA_STORE_ID"),
			APIToken: os.Getenv("FGA_API_TOKEN"),
			ModelID:  os.Getenv("FGA_MODEL_ID"),
		}
		a, err := authz.NewOpenFGA(cfg)
		if err != nil {
			panic(err)
		}
		return a
	case "mock":
		return &authz.Mock{AlwaysAllow: true}
	default:
		return authz.NewEngine(snap)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
