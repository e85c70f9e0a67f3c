package model

import (
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/types"
)

// GitHubAccount is the owner identity found in a webhook payload.
type GitHubAccount struct {
	ID    types.GitHubAccountID
	Login string
}

// Known reports whether both ID and login were found. Organizations are only
// reconciled for known accounts.
func (x GitHubAccount) Known() bool {
	return x.ID != 0 && x.Login != ""
}

// GitHubRepository is a repository found in a webhook payload.
type GitHubRepository struct {
	ID            types.GitHubRepoID
	Name          string
	DefaultBranch string
}

// GitHubEvent is a classified webhook delivery.
type GitHubEvent struct {
	DeliveryID types.GitHubDeliveryID
	Type       types.GitHubEventType
	Account    GitHubAccount

	// Repository is set only when the payload has a `repository` object with an ID.
	Repository *GitHubRepository

	// Repositories is the repository list of installation-class payloads.
	Repositories []GitHubRepository

	Payload json.RawMessage
}

// ToWebhookEvent builds the row to be recorded for this delivery.
func (x *GitHubEvent) ToWebhookEvent(repoID *types.RepoID) *WebhookEvent {
	event := &WebhookEvent{
		RepoID:     repoID,
		DeliveryID: x.DeliveryID,
		EventType:  x.Type,
		RawJSON:    x.Payload,
	}

	if x.Repository != nil {
		id := x.Repository.ID
		event.GitHubRepoID = &id
	}
	if x.Account.ID != 0 {
		id := x.Account.ID
		event.GitHubOrgID = &id
	}

	return event
}

// payload shapes. Only the fields needed for identity are decoded; the rest of
// the body is kept verbatim in GitHubEvent.Payload.
type githubPayload struct {
	Installation      *githubInstallation `json:"installation"`
	Organization      *githubAccount      `json:"organization"`
	Repository        *githubRepository   `json:"repository"`
	Repositories      []*githubRepository `json:"repositories"`
	RepositoriesAdded []*githubRepository `json:"repositories_added"`
}

type githubInstallation struct {
	Account      *githubAccount      `json:"account"`
	Repositories []*githubRepository `json:"repositories"`
}

type githubAccount struct {
	ID    *int64  `json:"id"`
	Login *string `json:"login"`
}

type githubRepository struct {
	ID            *int64         `json:"id"`
	Name          *string        `json:"name"`
	FullName      *string        `json:"full_name"`
	DefaultBranch *string        `json:"default_branch"`
	Owner         *githubAccount `json:"owner"`
}

func (x *githubRepository) toModel() GitHubRepository {
	repo := GitHubRepository{
		DefaultBranch: types.DefaultBranch,
	}
	if x.ID != nil {
		repo.ID = types.GitHubRepoID(*x.ID)
	}

	switch {
	case x.FullName != nil:
		repo.Name = *x.FullName
	case x.Name != nil:
		repo.Name = *x.Name
	}

	if x.DefaultBranch != nil && *x.DefaultBranch != "" {
		repo.DefaultBranch = *x.DefaultBranch
	}

	return repo
}

// accountStrategies are tried in order; each field is taken from the first
// strategy that provides it. Installation events nest the account under
// `installation.account`, organization-level events carry `organization`, and
// repository events carry `repository.owner`.
var accountStrategies = []func(p *githubPayload) *githubAccount{
	func(p *githubPayload) *githubAccount {
		if p.Installation == nil {
			return nil
		}
		return p.Installation.Account
	},
	func(p *githubPayload) *githubAccount {
		return p.Organization
	},
	func(p *githubPayload) *githubAccount {
		if p.Repository == nil {
			return nil
		}
		return p.Repository.Owner
	},
}

// repositoryListStrategies are tried in order; the first list present wins, even if it is empty.
var repositoryListStrategies = []func(p *githubPayload) []*githubRepository{
	func(p *githubPayload) []*githubRepository {
		return p.Repositories
	},
	func(p *githubPayload) []*githubRepository {
		return p.RepositoriesAdded
	},
	func(p *githubPayload) []*githubRepository {
		if p.Installation == nil {
			return nil
		}
		return p.Installation.Repositories
	},
}

func extractAccount(p *githubPayload) GitHubAccount {
	var account GitHubAccount
	for _, strategy := range accountStrategies {
		src := strategy(p)
		if src == nil {
			continue
		}
		if account.ID == 0 && src.ID != nil {
			account.ID = types.GitHubAccountID(*src.ID)
		}
		if account.Login == "" && src.Login != nil {
			account.Login = *src.Login
		}
	}
	return account
}

func extractRepository(p *githubPayload) *GitHubRepository {
	if p.Repository == nil || p.Repository.ID == nil || *p.Repository.ID == 0 {
		return nil
	}
	repo := p.Repository.toModel()
	return &repo
}

func extractRepositories(p *githubPayload) []GitHubRepository {
	for _, strategy := range repositoryListStrategies {
		list := strategy(p)
		if list == nil {
			continue
		}

		repos := make([]GitHubRepository, 0, len(list))
		for _, r := range list {
			if r == nil {
				continue
			}
			repo := r.toModel()
			if repo.ID == 0 || repo.Name == "" {
				continue
			}
			repos = append(repos, repo)
		}
		return repos
	}

	return nil
}

// ParseGitHubEvent classifies a raw webhook body. eventType and deliveryID come
// from the X-GitHub-Event and X-GitHub-Delivery headers; a missing event type
// becomes "unknown". The body must be syntactically valid JSON, otherwise
// types.ErrInvalidPayload is returned. Identity fields that are absent or have
// an unexpected JSON type are left empty.
func ParseGitHubEvent(eventType, deliveryID string, body []byte) (*GitHubEvent, error) {
	if !json.Valid(body) {
		return nil, goerr.Wrap(types.ErrInvalidPayload, "payload is not valid JSON",
			goerr.V("delivery_id", deliveryID),
			goerr.V("event_type", eventType),
		)
	}

	if eventType == "" {
		eventType = types.EventTypeUnknown.String()
	}

	var payload githubPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		// Unmarshal keeps decoding past type mismatches, so payload holds whatever matched.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, goerr.Wrap(types.ErrInvalidPayload, "failed to decode payload",
				goerr.V("delivery_id", deliveryID),
				goerr.V("event_type", eventType),
				goerr.V("error", err.Error()),
			)
		}
	}

	return &GitHubEvent{
		DeliveryID:   types.GitHubDeliveryID(deliveryID),
		Type:         types.GitHubEventType(eventType),
		Account:      extractAccount(&payload),
		Repository:   extractRepository(&payload),
		Repositories: extractRepositories(&payload),
		Payload:      json.RawMessage(body),
	}, nil
}
