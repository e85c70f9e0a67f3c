package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/infra"
	"github.com/m-mizutani/luna/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("store is required", func(t *testing.T) {
		uc := usecase.New(infra.New())

		ev := gt.R1(model.ParseGitHubEvent("ping", "d", []byte(`{}`))).NoError(t)
		err := uc.HandleGitHubEvent(context.Background(), ev)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
