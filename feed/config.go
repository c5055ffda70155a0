package feed

// Config holds configuration for the NHL feed client.
type Config struct {
	// BaseURL is the NHL web API root (rosters, standings, player landing).
	BaseURL string `mapstructure:"base_url" default:"https://api-web.nhle.com/v1"`
	// StatsURL is the NHL stats REST API root (season summaries).
	StatsURL string `mapstructure:"stats_url" default:"https://api.nhle.com/stats/rest/en"`
	// TimeoutSeconds is the per-request HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
