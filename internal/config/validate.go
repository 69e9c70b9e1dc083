package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	if c.Cleanup.RetentionDays <= 0 {
		return fmt.Errorf("cleanup.retention_days must be > 0 (got %d)", c.Cleanup.RetentionDays)
	}

	return nil
}

func (f *FeedConfig) validate() error {
	if f.WindowLimit <= 0 {
		return fmt.Errorf("window_limit must be > 0 (got %d)", f.WindowLimit)
	}
	if f.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %v)", f.CacheTTL)
	}
	if f.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must be >= 0 (got %v)", f.RefreshInterval)
	}
	if f.NotifyChannel == "" {
		return fmt.Errorf("notify_channel must not be empty")
	}
	return nil
}
