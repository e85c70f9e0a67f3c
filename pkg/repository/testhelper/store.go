package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository"
)

// TestAll runs all test cases for Store
// This is the main entry point for testing any Store implementation
func TestAll(t *testing.T, store interfaces.Store) {
	t.Run("OrganizationUpsert", func(t *testing.T) {
		TestOrganizationUpsert(t, store)
	})
	t.Run("OrganizationValidation", func(t *testing.T) {
		TestOrganizationValidation(t, store)
	})
	t.Run("RepositoryUpsert", func(t *testing.T) {
		TestRepositoryUpsert(t, store)
	})
	t.Run("RepositoryNotFound", func(t *testing.T) {
		TestRepositoryNotFound(t, store)
	})
	t.Run("WebhookEventInsert", func(t *testing.T) {
		TestWebhookEventInsert(t, store)
	})
}

// GitHub IDs are random so that suites can share a live backend
func newGitHubID() int64 {
	return rand.Int64N(1<<40) + 1
}

func newLogin() string {
	return fmt.Sprintf("org-%s", uuid.NewString()[:8])
}

// TestOrganizationUpsert checks that repeated upserts by GitHub ID converge to one row
func TestOrganizationUpsert(t *testing.T, store interfaces.Store) {
	ctx := context.Background()
	githubID := types.GitHubAccountID(newGitHubID())

	first, err := store.UpsertOrganization(ctx, &model.Organization{
		GitHubOrgID: githubID,
		Name:        newLogin(),
	})
	gt.NoError(t, err)
	gt.V(t, first.ID).NotEqual(types.OrgID(""))
	gt.V(t, first.GitHubOrgID).Equal(githubID)

	renamed := newLogin()
	second, err := store.UpsertOrganization(ctx, &model.Organization{
		GitHubOrgID: githubID,
		Name:        renamed,
	})
	gt.NoError(t, err)
	gt.V(t, second.ID).Equal(first.ID)
	gt.V(t, second.Name).Equal(renamed)
}

// TestOrganizationValidation checks that invalid organizations are rejected before reaching the backend
func TestOrganizationValidation(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	_, err := store.UpsertOrganization(ctx, &model.Organization{Name: newLogin()})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))

	_, err = store.UpsertOrganization(ctx, &model.Organization{GitHubOrgID: types.GitHubAccountID(newGitHubID())})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

// TestRepositoryUpsert checks repository creation, update and lookup
func TestRepositoryUpsert(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	org, err := store.UpsertOrganization(ctx, &model.Organization{
		GitHubOrgID: types.GitHubAccountID(newGitHubID()),
		Name:        newLogin(),
	})
	gt.NoError(t, err)

	githubID := types.GitHubRepoID(newGitHubID())
	name := fmt.Sprintf("%s/repo-%s", org.Name, uuid.NewString()[:8])

	created, err := store.UpsertRepository(ctx, &model.Repository{
		GitHubRepoID:  githubID,
		OrgID:         org.ID,
		Name:          name,
		DefaultBranch: types.DefaultBranch,
	})
	gt.NoError(t, err)
	gt.V(t, created.ID).NotEqual(types.RepoID(""))
	gt.V(t, created.OrgID).Equal(org.ID)
	gt.V(t, created.DefaultBranch).Equal(types.DefaultBranch)

	updated, err := store.UpsertRepository(ctx, &model.Repository{
		GitHubRepoID:  githubID,
		OrgID:         org.ID,
		Name:          name,
		DefaultBranch: "develop",
	})
	gt.NoError(t, err)
	gt.V(t, updated.ID).Equal(created.ID)
	gt.V(t, updated.DefaultBranch).Equal("develop")

	found, err := store.FindRepositoryByGitHubID(ctx, githubID)
	gt.NoError(t, err)
	gt.V(t, found.ID).Equal(created.ID)
	gt.V(t, found.GitHubRepoID).Equal(githubID)
	gt.V(t, found.Name).Equal(name)
	gt.V(t, found.DefaultBranch).Equal("develop")
}

// TestRepositoryNotFound checks that a lookup of an unknown GitHub ID returns ErrNotFound
func TestRepositoryNotFound(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	_, err := store.FindRepositoryByGitHubID(ctx, types.GitHubRepoID(newGitHubID()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestWebhookEventInsert checks that events are accepted with and without a repository link
func TestWebhookEventInsert(t *testing.T, store interfaces.Store) {
	ctx := context.Background()

	org, err := store.UpsertOrganization(ctx, &model.Organization{
		GitHubOrgID: types.GitHubAccountID(newGitHubID()),
		Name:        newLogin(),
	})
	gt.NoError(t, err)

	repo, err := store.UpsertRepository(ctx, &model.Repository{
		GitHubRepoID:  types.GitHubRepoID(newGitHubID()),
		OrgID:         org.ID,
		Name:          org.Name + "/repo",
		DefaultBranch: types.DefaultBranch,
	})
	gt.NoError(t, err)

	gt.NoError(t, store.InsertWebhookEvent(ctx, &model.WebhookEvent{
		RepoID:       &repo.ID,
		DeliveryID:   types.GitHubDeliveryID(uuid.NewString()),
		EventType:    "push",
		GitHubRepoID: &repo.GitHubRepoID,
		GitHubOrgID:  &org.GitHubOrgID,
		RawJSON:      []byte(`{"ref":"refs/heads/main"}`),
	}))

	gt.NoError(t, store.InsertWebhookEvent(ctx, &model.WebhookEvent{
		DeliveryID: types.GitHubDeliveryID(uuid.NewString()),
		EventType:  types.EventTypeUnknown,
		RawJSON:    []byte(`{}`),
	}))
}
