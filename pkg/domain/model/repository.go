package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/types"
)

// Repository is a GitHub repository known to the store. It always belongs to exactly one Organization.
type Repository struct {
	ID            types.RepoID       `json:"id,omitempty" firestore:"id"`
	GitHubRepoID  types.GitHubRepoID `json:"github_repo_id" firestore:"github_repo_id"`
	OrgID         types.OrgID        `json:"org_id" firestore:"org_id"`
	Name          string             `json:"name" firestore:"name"`
	DefaultBranch string             `json:"default_branch" firestore:"default_branch"`
}

func (x *Repository) Validate() error {
	if x.GitHubRepoID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "github_repo_id is empty")
	}
	if x.OrgID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "org_id is empty",
			goerr.V("github_repo_id", x.GitHubRepoID),
		)
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty",
			goerr.V("github_repo_id", x.GitHubRepoID),
		)
	}
	return nil
}
