package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/controller/server"
	"github.com/m-mizutani/luna/pkg/domain/mock"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		mux.ServeHTTP(httptest.NewRecorder(), req)

		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)
		gt.V(t, logging.RequestIDFrom(capturedCtx)).NotEqual(types.RequestID(""))
	})

	t.Run("statusCodeLogger passes status codes through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusUnauthorized, http.StatusInternalServerError} {
			srv := server.New(&mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
			gt.V(t, rec.Code).Equal(code)
		}
	})

	t.Run("statusCodeLogger defaults to 200 when WriteHeader not called", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/noheader", nil))
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("panic in handler yields a single 500", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
