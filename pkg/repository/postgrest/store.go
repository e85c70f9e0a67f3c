package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository"
)

const repositoryColumns = "id,github_repo_id,org_id,name,default_branch"

func (x *Client) UpsertOrganization(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	if err := org.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid organization")
	}

	var rows []*model.Organization
	req := &request{
		method: http.MethodPost,
		table:  tableOrgs,
		query:  url.Values{"on_conflict": {"github_org_id"}},
		prefer: preferUpsert,
		body: []*model.Organization{{
			GitHubOrgID: org.GitHubOrgID,
			Name:        org.Name,
		}},
	}
	if err := x.do(ctx, req, &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert organization",
			goerr.V("github_org_id", org.GitHubOrgID),
		)
	}

	if len(rows) == 0 || rows[0] == nil || rows[0].ID == "" {
		return nil, goerr.Wrap(repository.ErrStoreRejected, "upsert returned no organization row",
			goerr.V("github_org_id", org.GitHubOrgID),
		)
	}

	return rows[0], nil
}

func (x *Client) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	var rows []*model.Repository
	req := &request{
		method: http.MethodPost,
		table:  tableRepos,
		query:  url.Values{"on_conflict": {"github_repo_id"}},
		prefer: preferUpsert,
		body: []*model.Repository{{
			GitHubRepoID:  repo.GitHubRepoID,
			OrgID:         repo.OrgID,
			Name:          repo.Name,
			DefaultBranch: repo.DefaultBranch,
		}},
	}
	if err := x.do(ctx, req, &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert repository",
			goerr.V("github_repo_id", repo.GitHubRepoID),
		)
	}

	if len(rows) == 0 || rows[0] == nil || rows[0].ID == "" {
		return nil, goerr.Wrap(repository.ErrStoreRejected, "upsert returned no repository row",
			goerr.V("github_repo_id", repo.GitHubRepoID),
		)
	}

	return rows[0], nil
}

func (x *Client) FindRepositoryByGitHubID(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	var rows []*model.Repository
	req := &request{
		method: http.MethodGet,
		table:  tableRepos,
		query: url.Values{
			"github_repo_id": {fmt.Sprintf("eq.%d", id)},
			"select":         {repositoryColumns},
			"limit":          {"1"},
		},
	}
	if err := x.do(ctx, req, &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to find repository",
			goerr.V("github_repo_id", id),
		)
	}

	if len(rows) == 0 || rows[0] == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("github_repo_id", id),
		)
	}

	return rows[0], nil
}

func (x *Client) InsertWebhookEvent(ctx context.Context, event *model.WebhookEvent) error {
	req := &request{
		method: http.MethodPost,
		table:  tableWebhookEvents,
		prefer: preferInsert,
		body:   []*model.WebhookEvent{event},
	}
	if err := x.do(ctx, req, nil); err != nil {
		return goerr.Wrap(err, "failed to insert webhook event",
			goerr.V("delivery_id", event.DeliveryID),
			goerr.V("event_type", event.EventType),
		)
	}

	return nil
}
