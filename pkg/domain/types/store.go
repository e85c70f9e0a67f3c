package types

import "log/slog"

type (
	// OrgID is the store-assigned identifier of an organization row
	OrgID string
	// RepoID is the store-assigned identifier of a repository row
	RepoID string

	StoreURL        string
	StoreServiceKey string
)

func (x OrgID) String() string { return string(x) }
func (x RepoID) String() string { return string(x) }

func (x StoreServiceKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x StoreServiceKey) String() string {
	return "***********"
}
