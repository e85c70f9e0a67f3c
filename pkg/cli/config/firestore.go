package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID, used as store when PostgREST URL is not set",
			Category:    "Store",
			Sources:     cli.EnvVars("LUNA_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Store",
			Sources:     cli.EnvVars("LUNA_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Firestore) NewStore(ctx context.Context) (interfaces.Store, error) {
	return firestore.New(ctx, x.projectID, x.databaseID)
}
