package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Textfile     string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(fc fileMetrics) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, boolOr(fc.Enabled, defaultMetricsOn)),
		Textfile:     envOrDefault(envMetricsTextfile, fc.Textfile),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, fc.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, firstNonEmpty(fc.ServiceName, defaultServiceName)),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, boolOr(fc.OtlpInsecure, defaultOtelInsecure)),
	}
}
