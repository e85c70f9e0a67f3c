package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/utils/logging"
)

// HandleGitHubEvent reconciles the organization and repositories referenced by
// event and records the event. Store calls run strictly in order: organization,
// repositories, then the event row. A reconciliation failure returns before the
// event is recorded; a recording failure leaves earlier upserts in place.
func (x *UseCase) HandleGitHubEvent(ctx context.Context, event *model.GitHubEvent) error {
	store, err := x.store()
	if err != nil {
		return err
	}

	logger := logging.From(ctx).With(
		slog.Any("delivery_id", event.DeliveryID),
		slog.Any("event_type", event.Type),
	)
	ctx = logging.With(ctx, logger)

	r := &reconciler{uc: x, account: event.Account}

	if event.Type.IsInstallation() && event.Account.Known() {
		if err := r.installation(ctx, event.Repositories); err != nil {
			return err
		}
	}

	var repoID *types.RepoID
	if event.Repository != nil {
		id, err := r.repository(ctx, *event.Repository)
		if err != nil {
			return err
		}
		repoID = id
	}

	row := event.ToWebhookEvent(repoID)
	if err := store.InsertWebhookEvent(ctx, row); err != nil {
		return goerr.Wrap(err, "failed to record webhook event",
			goerr.V("delivery_id", event.DeliveryID),
			goerr.V("event_type", event.Type),
		)
	}

	logger.Info("webhook event recorded",
		slog.Bool("linked", repoID != nil),
		slog.Int("installed_repos", len(event.Repositories)),
	)
	return nil
}

// reconciler holds per-delivery state so the organization is upserted at most once
type reconciler struct {
	uc      *UseCase
	account model.GitHubAccount
	orgID   types.OrgID
}

func (x *reconciler) org(ctx context.Context) (types.OrgID, error) {
	if x.orgID != "" {
		return x.orgID, nil
	}

	id, err := x.uc.ReconcileOrg(ctx, x.account)
	if err != nil {
		return "", err
	}
	x.orgID = id
	return id, nil
}

// installation upserts every listed repository with the default branch, since
// installation payloads carry no branch metadata.
func (x *reconciler) installation(ctx context.Context, repos []model.GitHubRepository) error {
	orgID, err := x.org(ctx)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		repo.DefaultBranch = types.DefaultBranch
		if _, err := x.uc.ReconcileRepo(ctx, orgID, repo); err != nil {
			return err
		}
	}

	return nil
}

// repository links the event to a repository. Without a known owner the
// repository is only looked up, never created.
func (x *reconciler) repository(ctx context.Context, repo model.GitHubRepository) (*types.RepoID, error) {
	if !x.account.Known() {
		return x.uc.FindRepo(ctx, repo.ID)
	}

	orgID, err := x.org(ctx)
	if err != nil {
		return nil, err
	}

	if repo.Name == "" {
		return x.uc.FindRepo(ctx, repo.ID)
	}

	id, err := x.uc.ReconcileRepo(ctx, orgID, repo)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
