package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository"
	"github.com/m-mizutani/luna/pkg/utils/logging"
)

func (x *UseCase) store() (interfaces.Store, error) {
	store := x.clients.Store()
	if store == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "store is not configured")
	}
	return store, nil
}

// ReconcileOrg upserts the organization of account and returns its internal ID
func (x *UseCase) ReconcileOrg(ctx context.Context, account model.GitHubAccount) (types.OrgID, error) {
	store, err := x.store()
	if err != nil {
		return "", err
	}

	org, err := store.UpsertOrganization(ctx, &model.Organization{
		GitHubOrgID: account.ID,
		Name:        account.Login,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to reconcile organization",
			goerr.V("github_org_id", account.ID),
			goerr.V("login", account.Login),
		)
	}

	logging.From(ctx).Debug("organization reconciled",
		slog.Any("org_id", org.ID),
		slog.Any("github_org_id", org.GitHubOrgID),
	)
	return org.ID, nil
}

// ReconcileRepo upserts repo under orgID and returns its internal ID
func (x *UseCase) ReconcileRepo(ctx context.Context, orgID types.OrgID, repo model.GitHubRepository) (types.RepoID, error) {
	store, err := x.store()
	if err != nil {
		return "", err
	}

	branch := repo.DefaultBranch
	if branch == "" {
		branch = types.DefaultBranch
	}

	stored, err := store.UpsertRepository(ctx, &model.Repository{
		GitHubRepoID:  repo.ID,
		OrgID:         orgID,
		Name:          repo.Name,
		DefaultBranch: branch,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to reconcile repository",
			goerr.V("github_repo_id", repo.ID),
			goerr.V("org_id", orgID),
			goerr.V("name", repo.Name),
		)
	}

	logging.From(ctx).Debug("repository reconciled",
		slog.Any("repo_id", stored.ID),
		slog.Any("github_repo_id", stored.GitHubRepoID),
	)
	return stored.ID, nil
}

// FindRepo looks up the internal ID of a repository without creating it.
// It returns nil when no repository has the GitHub ID.
func (x *UseCase) FindRepo(ctx context.Context, githubRepoID types.GitHubRepoID) (*types.RepoID, error) {
	store, err := x.store()
	if err != nil {
		return nil, err
	}

	repo, err := store.FindRepositoryByGitHubID(ctx, githubRepoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to find repository",
			goerr.V("github_repo_id", githubRepoID),
		)
	}

	return &repo.ID, nil
}
