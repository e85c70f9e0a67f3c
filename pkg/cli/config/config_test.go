package config_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/cli/config"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository/postgrest"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

// parse runs a command with flags and returns after its action is invoked
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHub(t *testing.T) {
	var cfg config.GitHub
	gt.True(t, flagNames(cfg.Flags())["github-webhook-secret"])

	parse(t, cfg.Flags(), "--github-webhook-secret", "s3cr3t")
	gt.V(t, cfg.Secret()).Equal(types.WebhookSecret("s3cr3t"))
}

func TestGitHubSecretFromEnv(t *testing.T) {
	t.Setenv("LUNA_GITHUB_WEBHOOK_SECRET", "from-env")

	var cfg config.GitHub
	parse(t, cfg.Flags())
	gt.V(t, cfg.Secret()).Equal(types.WebhookSecret("from-env"))
}

func TestStore(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		var cfg config.Store
		names := flagNames(cfg.Flags())
		gt.True(t, names["store-url"])
		gt.True(t, names["store-service-key"])
		gt.True(t, names["firestore-project-id"])
		gt.True(t, names["firestore-database-id"])
	})

	t.Run("PostgREST is selected by URL", func(t *testing.T) {
		var cfg config.Store
		parse(t, cfg.Flags(), "--store-url", "https://store.example.com", "--store-service-key", "key")

		store, err := cfg.NewStore(context.Background(), http.DefaultClient)
		gt.NoError(t, err)
		_, ok := store.(*postgrest.Client)
		gt.True(t, ok)
	})

	t.Run("PostgREST without service key is rejected", func(t *testing.T) {
		var cfg config.Store
		parse(t, cfg.Flags(), "--store-url", "https://store.example.com")

		_, err := cfg.NewStore(context.Background(), http.DefaultClient)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("unconfigured store is rejected", func(t *testing.T) {
		var cfg config.Store
		parse(t, cfg.Flags())

		_, err := cfg.NewStore(context.Background(), http.DefaultClient)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
