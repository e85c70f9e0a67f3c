package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/model"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/utils/errutil"
	"github.com/m-mizutani/luna/pkg/utils/logging"
)

const signatureHeader = "X-Hub-Signature-256"

// handleGitHubWebhook verifies, classifies and records one delivery. Nothing
// reaches the store until the signature has been verified against the raw body.
func handleGitHubWebhook(uc interfaces.UseCase, secret types.WebhookSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logging.From(ctx).Warn("fail to read request body", slog.Any("error", err))
			safeWrite(w, http.StatusBadRequest, contentTypeText, []byte("Invalid request body"))
			return
		}

		if !model.VerifySignature(body, r.Header.Get(signatureHeader), secret) {
			logging.From(ctx).Warn("invalid webhook signature",
				slog.String("event_type", github.WebHookType(r)),
				slog.String("delivery_id", github.DeliveryID(r)),
			)
			safeWrite(w, http.StatusUnauthorized, contentTypeText, []byte("Invalid signature"))
			return
		}

		event, err := model.ParseGitHubEvent(github.WebHookType(r), github.DeliveryID(r), body)
		if err != nil {
			if errors.Is(err, types.ErrInvalidPayload) {
				logging.From(ctx).Warn("invalid webhook payload", slog.Any("error", err))
				safeWrite(w, http.StatusBadRequest, contentTypeText, []byte("Invalid JSON"))
				return
			}
			errutil.HandleError(ctx, "fail to parse GitHub event", err)
			safeWrite(w, http.StatusInternalServerError, contentTypeText, []byte(err.Error()))
			return
		}

		logging.From(ctx).Info("Received GitHub event",
			slog.Any("event_type", event.Type),
			slog.Any("delivery_id", event.DeliveryID),
		)

		if err := uc.HandleGitHubEvent(ctx, event); err != nil {
			err = goerr.Wrap(err, "fail to handle GitHub event",
				goerr.V("delivery_id", event.DeliveryID),
				goerr.V("event_type", event.Type),
			)
			errutil.HandleError(ctx, "fail to handle GitHub event", err)
			safeWrite(w, http.StatusInternalServerError, contentTypeText, []byte(err.Error()))
			return
		}

		safeWrite(w, http.StatusOK, contentTypeJSON, responseOK)
	}
}
