package config

import (
	"log/slog"

	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	secret types.WebhookSecret `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Secret shared with GitHub to sign webhook deliveries",
			Category:    "GitHub",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("LUNA_GITHUB_WEBHOOK_SECRET", "GITHUB_WEBHOOK_SECRET"),
			Required:    true,
		},
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Secret.len", len(x.secret)),
	)
}

func (x GitHub) Secret() types.WebhookSecret {
	return x.secret
}
