package infra

import (
	"net/http"

	"github.com/m-mizutani/luna/pkg/domain/interfaces"
)

type Clients struct {
	httpClient HTTPClient
	store      interfaces.Store
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) Store() interfaces.Store {
	return x.store
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithStore(store interfaces.Store) Option {
	return func(x *Clients) {
		x.store = store
	}
}
