package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"
	envBdlTimeout = "BALLDONTLIE_TIMEOUT"

	defaultBdlBaseURL = "https://api.balldontlie.io/v1"
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
	Timeout Duration
}

func loadBalldontlie(fc fileBalldontlie) BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, firstNonEmpty(fc.BaseURL, defaultBdlBaseURL)),
		APIKey:  envOrDefault(envBdlAPIKey, fc.APIKey),
		Timeout: durationEnvOrDefault(envBdlTimeout, parseDurationOr(fc.Timeout, defaultBdlTimeout)),
	}
}
