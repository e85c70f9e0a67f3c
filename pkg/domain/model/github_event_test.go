package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
)

func TestParseGitHubEvent(t *testing.T) {
	t.Run("push event with repository owner", func(t *testing.T) {
		body := []byte(`{"repository":{"id":42,"full_name":"acme/repo","default_branch":"dev","owner":{"id":7,"login":"acme"}}}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "delivery-1", body)).NoError(t)
		gt.V(t, ev.Type).Equal(types.GitHubEventType("push"))
		gt.V(t, ev.DeliveryID).Equal(types.GitHubDeliveryID("delivery-1"))
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(7))
		gt.V(t, ev.Account.Login).Equal("acme")
		gt.True(t, ev.Account.Known())
		gt.V(t, ev.Repository.ID).Equal(types.GitHubRepoID(42))
		gt.V(t, ev.Repository.Name).Equal("acme/repo")
		gt.V(t, ev.Repository.DefaultBranch).Equal("dev")
		gt.V(t, string(ev.Payload)).Equal(string(body))
	})

	t.Run("missing headers fall back to sentinels", func(t *testing.T) {
		ev := gt.R1(model.ParseGitHubEvent("", "", []byte(`{}`))).NoError(t)
		gt.V(t, ev.Type).Equal(types.EventTypeUnknown)
		gt.V(t, ev.DeliveryID).Equal(types.GitHubDeliveryID(""))
		gt.V(t, ev.Account.Known()).Equal(false)
		gt.V(t, ev.Repository == nil).Equal(true)
		gt.V(t, len(ev.Repositories)).Equal(0)
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		for _, body := range []string{"", "{", "not json", `{"repository":}`} {
			_, err := model.ParseGitHubEvent("push", "d", []byte(body))
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidPayload))
		}
	})

	t.Run("valid JSON that is not an object is accepted without identity", func(t *testing.T) {
		for _, body := range []string{`[]`, `"text"`, `null`, `123`} {
			ev := gt.R1(model.ParseGitHubEvent("ping", "d", []byte(body))).NoError(t)
			gt.V(t, ev.Account.Known()).Equal(false)
			gt.V(t, ev.Repository == nil).Equal(true)
		}
	})

	t.Run("field with unexpected type is ignored", func(t *testing.T) {
		body := []byte(`{"repository":{"id":"not-a-number","name":"repo","owner":{"id":7,"login":"acme"}}}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Repository == nil).Equal(true)
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(7))
	})

	t.Run("default branch falls back to main", func(t *testing.T) {
		body := []byte(`{"repository":{"id":42,"name":"repo"}}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Repository.DefaultBranch).Equal(types.DefaultBranch)
		gt.V(t, ev.Repository.Name).Equal("repo")
		gt.V(t, ev.Account.Known()).Equal(false)
	})

	t.Run("repository without id is not a repository context", func(t *testing.T) {
		body := []byte(`{"repository":{"full_name":"acme/repo","owner":{"id":7,"login":"acme"}}}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Repository == nil).Equal(true)
		gt.True(t, ev.Account.Known())
	})

	t.Run("installation account takes precedence", func(t *testing.T) {
		body := []byte(`{
			"installation": {"account": {"id": 1, "login": "from-installation"}},
			"organization": {"id": 2, "login": "from-organization"},
			"repository": {"id": 42, "name": "repo", "owner": {"id": 3, "login": "from-owner"}}
		}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(1))
		gt.V(t, ev.Account.Login).Equal("from-installation")
	})

	t.Run("organization is used when installation has no account", func(t *testing.T) {
		body := []byte(`{
			"installation": {"id": 99},
			"organization": {"id": 2, "login": "from-organization"},
			"repository": {"id": 42, "name": "repo", "owner": {"id": 3, "login": "from-owner"}}
		}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(2))
		gt.V(t, ev.Account.Login).Equal("from-organization")
	})

	t.Run("each identity field takes the first strategy providing it", func(t *testing.T) {
		body := []byte(`{
			"installation": {"account": {"id": 1}},
			"repository": {"id": 42, "name": "repo", "owner": {"id": 3, "login": "from-owner"}}
		}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(1))
		gt.V(t, ev.Account.Login).Equal("from-owner")
	})

	t.Run("full_name takes precedence over name", func(t *testing.T) {
		body := []byte(`{"repository":{"id":42,"name":"repo","full_name":"acme/repo"}}`)

		ev := gt.R1(model.ParseGitHubEvent("push", "d", body)).NoError(t)
		gt.V(t, ev.Repository.Name).Equal("acme/repo")
	})
}

func TestParseGitHubEventInstallation(t *testing.T) {
	account := &github.User{
		ID:    github.Int64(7),
		Login: github.String("acme"),
	}

	t.Run("installation event lists repositories", func(t *testing.T) {
		body := gt.R1(json.Marshal(&github.InstallationEvent{
			Action: github.String("created"),
			Installation: &github.Installation{
				ID:      github.Int64(1000),
				Account: account,
			},
			Repositories: []*github.Repository{
				{ID: github.Int64(1), FullName: github.String("acme/one"), Name: github.String("one")},
				{ID: github.Int64(2), Name: github.String("two")},
				{ID: github.Int64(3)},
				{FullName: github.String("acme/no-id")},
			},
		})).NoError(t)

		ev := gt.R1(model.ParseGitHubEvent("installation", "d", body)).NoError(t)
		gt.True(t, ev.Type.IsInstallation())
		gt.V(t, ev.Account.ID).Equal(types.GitHubAccountID(7))
		gt.V(t, ev.Account.Login).Equal("acme")
		gt.V(t, ev.Repositories).Equal([]model.GitHubRepository{
			{ID: 1, Name: "acme/one", DefaultBranch: types.DefaultBranch},
			{ID: 2, Name: "two", DefaultBranch: types.DefaultBranch},
		})
	})

	t.Run("installation_repositories event uses repositories_added", func(t *testing.T) {
		body := gt.R1(json.Marshal(&github.InstallationRepositoriesEvent{
			Action: github.String("added"),
			Installation: &github.Installation{
				ID:      github.Int64(1000),
				Account: account,
			},
			RepositoriesAdded: []*github.Repository{
				{ID: github.Int64(10), FullName: github.String("acme/ten")},
			},
		})).NoError(t)

		ev := gt.R1(model.ParseGitHubEvent("installation_repositories", "d", body)).NoError(t)
		gt.True(t, ev.Type.IsInstallation())
		gt.V(t, ev.Repositories).Equal([]model.GitHubRepository{
			{ID: 10, Name: "acme/ten", DefaultBranch: types.DefaultBranch},
		})
	})

	t.Run("repositories list wins over repositories_added even when empty", func(t *testing.T) {
		body := []byte(`{
			"installation": {"account": {"id": 7, "login": "acme"}},
			"repositories": [],
			"repositories_added": [{"id": 10, "full_name": "acme/ten"}]
		}`)

		ev := gt.R1(model.ParseGitHubEvent("installation", "d", body)).NoError(t)
		gt.V(t, len(ev.Repositories)).Equal(0)
	})

	t.Run("installation scoped list is the last fallback", func(t *testing.T) {
		body := []byte(`{
			"installation": {
				"account": {"id": 7, "login": "acme"},
				"repositories": [{"id": 20, "full_name": "acme/twenty"}]
			}
		}`)

		ev := gt.R1(model.ParseGitHubEvent("installation", "d", body)).NoError(t)
		gt.V(t, ev.Repositories).Equal([]model.GitHubRepository{
			{ID: 20, Name: "acme/twenty", DefaultBranch: types.DefaultBranch},
		})
	})
}

func TestGitHubEventToWebhookEvent(t *testing.T) {
	t.Run("observed ids are kept without a link", func(t *testing.T) {
		body := []byte(`{"repository":{"id":42,"name":"repo","owner":{"id":7,"login":"acme"}}}`)
		ev := gt.R1(model.ParseGitHubEvent("push", "delivery-1", body)).NoError(t)

		row := ev.ToWebhookEvent(nil)
		gt.V(t, row.RepoID == nil).Equal(true)
		gt.V(t, *row.GitHubRepoID).Equal(types.GitHubRepoID(42))
		gt.V(t, *row.GitHubOrgID).Equal(types.GitHubAccountID(7))
		gt.V(t, row.DeliveryID).Equal(types.GitHubDeliveryID("delivery-1"))
		gt.V(t, row.EventType).Equal(types.GitHubEventType("push"))
		gt.V(t, string(row.RawJSON)).Equal(string(body))
	})

	t.Run("absent ids are recorded as null", func(t *testing.T) {
		ev := gt.R1(model.ParseGitHubEvent("ping", "d", []byte(`{"zen":"hi"}`))).NoError(t)
		repoID := types.RepoID("internal")

		row := ev.ToWebhookEvent(&repoID)
		gt.V(t, *row.RepoID).Equal(repoID)
		gt.V(t, row.GitHubRepoID == nil).Equal(true)
		gt.V(t, row.GitHubOrgID == nil).Equal(true)

		raw := gt.R1(json.Marshal(row)).NoError(t)
		gt.V(t, string(raw)).Equal(`{"repo_id":"internal","delivery_id":"d","event_type":"ping","github_repo_id":null,"github_org_id":null,"raw_json":{"zen":"hi"}}`)
	})
}
