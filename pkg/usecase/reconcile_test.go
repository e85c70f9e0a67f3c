package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/domain/mock"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/infra"
	"github.com/m-mizutani/luna/pkg/repository"
	"github.com/m-mizutani/luna/pkg/repository/memory"
	"github.com/m-mizutani/luna/pkg/usecase"
)

func TestReconcileOrg(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := usecase.New(infra.New(infra.WithStore(store)))

	first := gt.R1(uc.ReconcileOrg(ctx, model.GitHubAccount{ID: 7, Login: "acme"})).NoError(t)
	second := gt.R1(uc.ReconcileOrg(ctx, model.GitHubAccount{ID: 7, Login: "acme-renamed"})).NoError(t)

	gt.V(t, second).Equal(first)
	orgs := store.Organizations()
	gt.V(t, len(orgs)).Equal(1)
	gt.V(t, orgs[0].Name).Equal("acme-renamed")
}

func TestReconcileRepo(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := usecase.New(infra.New(infra.WithStore(store)))

	orgID := gt.R1(uc.ReconcileOrg(ctx, model.GitHubAccount{ID: 7, Login: "acme"})).NoError(t)

	t.Run("empty branch falls back to default", func(t *testing.T) {
		id := gt.R1(uc.ReconcileRepo(ctx, orgID, model.GitHubRepository{ID: 42, Name: "acme/repo"})).NoError(t)

		repo := gt.R1(store.FindRepositoryByGitHubID(ctx, 42)).NoError(t)
		gt.V(t, repo.ID).Equal(id)
		gt.V(t, repo.DefaultBranch).Equal(types.DefaultBranch)
	})

	t.Run("branch is overwritten and ID is kept", func(t *testing.T) {
		before := gt.R1(store.FindRepositoryByGitHubID(ctx, 42)).NoError(t)
		id := gt.R1(uc.ReconcileRepo(ctx, orgID, model.GitHubRepository{ID: 42, Name: "acme/repo", DefaultBranch: "dev"})).NoError(t)

		after := gt.R1(store.FindRepositoryByGitHubID(ctx, 42)).NoError(t)
		gt.V(t, id).Equal(before.ID)
		gt.V(t, after.DefaultBranch).Equal("dev")
	})
}

func TestFindRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("not found is not an error", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithStore(memory.New())))
		id := gt.R1(uc.FindRepo(ctx, 42)).NoError(t)
		gt.V(t, id == nil).Equal(true)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		store := &mock.StoreMock{
			FindRepositoryByGitHubIDFunc: func(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
				return nil, goerr.Wrap(repository.ErrStoreRejected, "GET repos failed (503)")
			},
		}
		uc := usecase.New(infra.New(infra.WithStore(store)))

		_, err := uc.FindRepo(ctx, 42)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrStoreRejected))
	})

	t.Run("existing repository is found", func(t *testing.T) {
		store := memory.New()
		uc := usecase.New(infra.New(infra.WithStore(store)))
		orgID := gt.R1(uc.ReconcileOrg(ctx, model.GitHubAccount{ID: 7, Login: "acme"})).NoError(t)
		repoID := gt.R1(uc.ReconcileRepo(ctx, orgID, model.GitHubRepository{ID: 42, Name: "acme/repo"})).NoError(t)

		found := gt.R1(uc.FindRepo(ctx, 42)).NoError(t)
		gt.V(t, *found).Equal(repoID)
	})
}
