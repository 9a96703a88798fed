package di

import (
	"time"

	"holipass/config"
)

// provideContentTTL converts the configured cache window into the duration
// the content repository expects.
func provideContentTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Cache.ContentTTLSeconds) * time.Second
}
