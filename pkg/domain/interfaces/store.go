package interfaces

import (
	"context"

	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
)

//go:generate moq -out ../mock/store.go -pkg mock . Store

// Store persists organizations, repositories and webhook events. Upserts are keyed
// by GitHub ID: the first call creates the row, later calls overwrite the mutable
// fields and return the existing internal ID. Exactly-once creation under
// concurrent first sightings holds only if the backend enforces the uniqueness of
// the GitHub ID atomically.
type Store interface {
	UpsertOrganization(ctx context.Context, org *model.Organization) (*model.Organization, error)
	UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error)

	// FindRepositoryByGitHubID returns repository.ErrNotFound if no row matches.
	FindRepositoryByGitHubID(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error)

	InsertWebhookEvent(ctx context.Context, event *model.WebhookEvent) error
}
