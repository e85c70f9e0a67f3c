package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository"
)

// Store is an in-memory interfaces.Store. All upserts run under one lock, so
// concurrent first sightings of the same GitHub ID converge to a single row.
type Store struct {
	mu     sync.RWMutex
	orgs   map[types.GitHubAccountID]*model.Organization
	repos  map[types.GitHubRepoID]*model.Repository
	events []*model.WebhookEvent
}

var _ interfaces.Store = (*Store)(nil)

// New creates a new in-memory store
func New() *Store {
	return &Store{
		orgs:  make(map[types.GitHubAccountID]*model.Organization),
		repos: make(map[types.GitHubRepoID]*model.Repository),
	}
}

func (r *Store) UpsertOrganization(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	if err := org.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid organization")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.orgs[org.GitHubOrgID]
	if !exists {
		stored = &model.Organization{
			ID:          types.OrgID(uuid.NewString()),
			GitHubOrgID: org.GitHubOrgID,
		}
		r.orgs[org.GitHubOrgID] = stored
	}
	stored.Name = org.Name

	copied := *stored
	return &copied, nil
}

func (r *Store) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasOrg(repo.OrgID) {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "organization does not exist",
			goerr.V("org_id", repo.OrgID),
			goerr.V("github_repo_id", repo.GitHubRepoID),
		)
	}

	stored, exists := r.repos[repo.GitHubRepoID]
	if !exists {
		stored = &model.Repository{
			ID:           types.RepoID(uuid.NewString()),
			GitHubRepoID: repo.GitHubRepoID,
		}
		r.repos[repo.GitHubRepoID] = stored
	}
	stored.OrgID = repo.OrgID
	stored.Name = repo.Name
	stored.DefaultBranch = repo.DefaultBranch

	copied := *stored
	return &copied, nil
}

func (r *Store) hasOrg(id types.OrgID) bool {
	for _, org := range r.orgs {
		if org.ID == id {
			return true
		}
	}
	return false
}

func (r *Store) FindRepositoryByGitHubID(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.repos[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("github_repo_id", id),
		)
	}

	copied := *stored
	return &copied, nil
}

func (r *Store) InsertWebhookEvent(ctx context.Context, event *model.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *event
	r.events = append(r.events, &copied)
	return nil
}

// Organizations returns a snapshot of all stored organizations
func (r *Store) Organizations() []model.Organization {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orgs := make([]model.Organization, 0, len(r.orgs))
	for _, org := range r.orgs {
		orgs = append(orgs, *org)
	}
	return orgs
}

// Repositories returns a snapshot of all stored repositories
func (r *Store) Repositories() []model.Repository {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]model.Repository, 0, len(r.repos))
	for _, repo := range r.repos {
		repos = append(repos, *repo)
	}
	return repos
}

// WebhookEvents returns recorded events in insertion order
func (r *Store) WebhookEvents() []model.WebhookEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]model.WebhookEvent, 0, len(r.events))
	for _, ev := range r.events {
		events = append(events, *ev)
	}
	return events
}
