package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/luna/pkg/domain/mock"
	"github.com/m-mizutani/luna/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.Store()).Equal(nil)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("WithStore option sets store", func(t *testing.T) {
		store := &mock.StoreMock{}
		clients := infra.New(infra.WithStore(store))
		gt.V(t, clients.Store()).Equal(store)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
