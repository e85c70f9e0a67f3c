package model

import (
	"encoding/json"

	"github.com/m-mizutani/luna/pkg/domain/types"
)

// WebhookEvent is the append-only record of one received delivery. RepoID stays nil
// when the event carries no repository or the repository could not be linked; the
// observed GitHub IDs are kept either way.
type WebhookEvent struct {
	RepoID       *types.RepoID          `json:"repo_id" firestore:"repo_id"`
	DeliveryID   types.GitHubDeliveryID `json:"delivery_id" firestore:"delivery_id"`
	EventType    types.GitHubEventType  `json:"event_type" firestore:"event_type"`
	GitHubRepoID *types.GitHubRepoID    `json:"github_repo_id" firestore:"github_repo_id"`
	GitHubOrgID  *types.GitHubAccountID `json:"github_org_id" firestore:"github_org_id"`
	RawJSON      json.RawMessage        `json:"raw_json" firestore:"raw_json"`
}
