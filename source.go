package termcard

import "context"

// ProfileSource supplies the profile shown on the card.
type ProfileSource interface {
	// FetchProfile returns the profile for username. Implementations never fail;
	// they report a fallback through FetchResult instead.
	FetchProfile(ctx context.Context, username string) FetchResult
}

// Ensure the sources implement ProfileSource
var (
	_ ProfileSource = (*Client)(nil)
	_ ProfileSource = StaticSource{}
)

// StaticSource always returns the fallback profile (offline rendering).
type StaticSource struct{}

func (StaticSource) FetchProfile(ctx context.Context, username string) FetchResult {
	return FetchResult{Profile: FallbackProfile(username), Fallback: true}
}
