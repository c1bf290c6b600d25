package catalog

import "time"

// Config holds configuration for the catalog feature.
type Config struct {
	// CountCacheTTLSeconds is how long product counts are cached. 0 disables caching.
	CountCacheTTLSeconds int `mapstructure:"count_cache_ttl_seconds" default:"60"`
	// ReportPrefix is the object prefix audit reports are uploaded under.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports/variations"`
	// ReportRetention is the number of uploaded audit reports kept. 0 keeps all.
	ReportRetention int `mapstructure:"report_retention" default:"30"`
}

// CountCacheTTL returns the count cache lifetime.
func (c Config) CountCacheTTL() time.Duration {
	if c.CountCacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CountCacheTTLSeconds) * time.Second
}
