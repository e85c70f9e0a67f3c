package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/infra"
	"github.com/m-mizutani/luna/pkg/repository/postgrest"
	"github.com/urfave/cli/v3"
)

// Store selects the store backend. PostgREST is used when its URL is set,
// otherwise Firestore when a project ID is set.
type Store struct {
	url        types.StoreURL
	serviceKey types.StoreServiceKey `masq:"secret"`
	firestore  Firestore
}

func (x *Store) Flags() []cli.Flag {
	return slice.Flatten(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "store-url",
				Usage:       "Base URL of the PostgREST store (e.g. https://<project>.supabase.co)",
				Category:    "Store",
				Destination: (*string)(&x.url),
				Sources:     cli.EnvVars("LUNA_STORE_URL", "SUPABASE_URL"),
			},
			&cli.StringFlag{
				Name:        "store-service-key",
				Usage:       "Service credential of the PostgREST store",
				Category:    "Store",
				Destination: (*string)(&x.serviceKey),
				Sources:     cli.EnvVars("LUNA_STORE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY"),
			},
		},
		x.firestore.Flags(),
	)
}

func (x *Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("URL", x.url),
		slog.Int("ServiceKey.len", len(x.serviceKey)),
		slog.Any("Firestore", &x.firestore),
	)
}

func (x *Store) NewStore(ctx context.Context, httpClient infra.HTTPClient) (interfaces.Store, error) {
	switch {
	case x.url != "":
		return postgrest.New(x.url, x.serviceKey, postgrest.WithHTTPClient(httpClient))
	case x.firestore.Enabled():
		return x.firestore.NewStore(ctx)
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "store is not configured, set --store-url or --firestore-project-id")
	}
}
