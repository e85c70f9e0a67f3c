package firestore

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionOrg          = "orgs"
	collectionRepo         = "repos"
	collectionWebhookEvent = "webhook_events"
)

type store struct {
	client *firestore.Client
}

// Documents of orgs and repos are keyed by GitHub ID, so the document ID is the
// conflict key and a transaction makes the first sighting atomic.
func toDocID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *store) UpsertOrganization(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	if err := org.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid organization")
	}

	docRef := r.client.Collection(collectionOrg).Doc(toDocID(int64(org.GitHubOrgID)))

	var result model.Organization
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result = model.Organization{}

		snap, err := tx.Get(docRef)
		switch {
		case err == nil:
			if err := snap.DataTo(&result); err != nil {
				return goerr.Wrap(err, "failed to decode organization")
			}
		case status.Code(err) == codes.NotFound:
			result.ID = types.OrgID(uuid.NewString())
			result.GitHubOrgID = org.GitHubOrgID
		default:
			return goerr.Wrap(err, "failed to get organization")
		}

		result.Name = org.Name
		return tx.Set(docRef, &result)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert organization",
			goerr.V("github_org_id", org.GitHubOrgID),
		)
	}

	return &result, nil
}

func (r *store) UpsertRepository(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid repository")
	}

	docRef := r.client.Collection(collectionRepo).Doc(toDocID(int64(repo.GitHubRepoID)))

	var result model.Repository
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result = model.Repository{}

		snap, err := tx.Get(docRef)
		switch {
		case err == nil:
			if err := snap.DataTo(&result); err != nil {
				return goerr.Wrap(err, "failed to decode repository")
			}
		case status.Code(err) == codes.NotFound:
			result.ID = types.RepoID(uuid.NewString())
			result.GitHubRepoID = repo.GitHubRepoID
		default:
			return goerr.Wrap(err, "failed to get repository")
		}

		result.OrgID = repo.OrgID
		result.Name = repo.Name
		result.DefaultBranch = repo.DefaultBranch
		return tx.Set(docRef, &result)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert repository",
			goerr.V("github_repo_id", repo.GitHubRepoID),
		)
	}

	return &result, nil
}

func (r *store) FindRepositoryByGitHubID(ctx context.Context, id types.GitHubRepoID) (*model.Repository, error) {
	iter := r.client.Collection(collectionRepo).
		Where("github_repo_id", "==", int64(id)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("github_repo_id", id),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository",
			goerr.V("github_repo_id", id),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("github_repo_id", id),
		)
	}

	return &repo, nil
}

func (r *store) InsertWebhookEvent(ctx context.Context, event *model.WebhookEvent) error {
	if _, err := r.client.Collection(collectionWebhookEvent).NewDoc().Create(ctx, event); err != nil {
		return goerr.Wrap(err, "failed to insert webhook event",
			goerr.V("delivery_id", event.DeliveryID),
			goerr.V("event_type", event.EventType),
		)
	}

	return nil
}
