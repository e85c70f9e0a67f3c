package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/luna/pkg/domain/model"
)

type UseCase interface {
	HandleGitHubEvent(ctx context.Context, event *model.GitHubEvent) error
}
