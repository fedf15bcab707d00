package auth

// GitHubIdentity is the user profile returned by GitHub after a code exchange.
type GitHubIdentity struct {
	ID          int64
	Login       string
	Email       *string
	Name        *string
	AvatarURL   *string
	AccessToken string
}
