package usecasecontract

import "time"

// IConfigProvider exposes the settings usecases need.
type IConfigProvider interface {
	GetAccessTokenExpiry() time.Duration
	GetFeedCacheTTL() time.Duration
}
