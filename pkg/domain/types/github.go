package types

import "log/slog"

type (
	GitHubAccountID  int64
	GitHubRepoID     int64
	GitHubDeliveryID string
	GitHubEventType  string
	WebhookSecret    string
)

const (
	EventTypeUnknown                  GitHubEventType = "unknown"
	EventTypeInstallation             GitHubEventType = "installation"
	EventTypeInstallationRepositories GitHubEventType = "installation_repositories"
)

// DefaultBranch is used when a payload does not carry branch metadata.
const DefaultBranch = "main"

// IsInstallation reports whether the event kind links an account to a set of repositories.
func (x GitHubEventType) IsInstallation() bool {
	return x == EventTypeInstallation || x == EventTypeInstallationRepositories
}

func (x GitHubEventType) String() string {
	return string(x)
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}
