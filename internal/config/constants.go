package config

import "time"

const (
	envInput            = "LOOKUP_INPUT"
	envOutput           = "LOOKUP_OUTPUT"
	envDirectory        = "DIRECTORY"
	envDirectoryDataset = "DIRECTORY_DATASET"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsOn        = "METRICS_ENABLED"
	envMetricsTextfile  = "METRICS_TEXTFILE"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	// DefaultInput and DefaultOutput match the file names the backfill tooling exchanges.
	DefaultInput  = "unmatched_players.txt"
	DefaultOutput = "nba_id_lookup_results.csv"

	defaultDirectory    = DirectoryStatic
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultServiceName  = "nba-id-lookup"
	defaultMetricsOn    = false
	defaultOtelInsecure = true

	defaultBdlTimeout = 10 * Duration(time.Second)
)

// Directory kinds understood by the directory factory.
const (
	DirectoryStatic      = "static"
	DirectoryBalldontlie = "balldontlie"
)
