package authz

import (
	"context"
	"fmt"
	"strings"

	fga "github.com/openfga/go-sdk/client"

	"github.com/QueryGate/pdp-go/internal/types"
)

// OpenFGA delegates the decision to an OpenFGA store, for deployments that
// keep user/table relationships there instead of the role directory. The
// tuple is (user:<user_id>, <lowercased query_type>, table:<qualified>).
type OpenFGA struct {
	c       *fga.OpenFgaClient
	modelID string
}

type OpenFGAConfig struct {
	APIURL   string
	StoreID  string
	APIToken string // optional
	ModelID  string // optional but recommended in prod
}

func NewOpenFGA(cfg OpenFGAConfig) (*OpenFGA, error) {
	conf := &fga.ClientConfiguration{
		ApiUrl:  cfg.APIURL,
		StoreId: cfg.StoreID,
	}
	if cfg.ModelID != "" {
		conf.AuthorizationModelId = cfg.ModelID
	}

	client, err := fga.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("openfga_client_init: %w", err)
	}
	return &OpenFGA{c: client, modelID: cfg.ModelID}, nil
}

func (o *OpenFGA) Check(ctx context.Context, req types.AccessRequest) (types.Decision, error) {
	checkReq := fga.ClientCheckRequest{
		User:     "user:" + strings.ToLower(req.UserID),
		Relation: strings.ToLower(req.Query.QueryType),
		Object:   "table:" + req.Query.QualifiedTable(),
	}

	resp, err := o.c.Check(ctx).Body(checkReq).Execute()
	if err != nil {
		return types.Decision{}, fmt.Errorf("fga_check_error: %w", err)
	}

	if resp.Allowed != nil && *resp.Allowed {
		return types.Decision{Effect: types.EffectAllowed, Message: "access granted"}, nil
	}
	return types.Decision{Effect: types.EffectDenied, Message: "insufficient privileges"}, nil
}
