package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/types"
)

// Organization is a GitHub account (organization or user) known to the store.
// GitHubOrgID is the conflict key; ID is assigned by the store on first sighting and never changes.
type Organization struct {
	ID          types.OrgID           `json:"id,omitempty" firestore:"id"`
	GitHubOrgID types.GitHubAccountID `json:"github_org_id" firestore:"github_org_id"`
	Name        string                `json:"name" firestore:"name"`
}

func (x *Organization) Validate() error {
	if x.GitHubOrgID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "github_org_id is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "organization name is empty",
			goerr.V("github_org_id", x.GitHubOrgID),
		)
	}
	return nil
}
