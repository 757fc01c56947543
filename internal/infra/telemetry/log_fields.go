package telemetry

import (
	"time"

	"go.uber.org/zap"
)

const (
	FieldEvent      = "event"
	FieldSlug       = "slug"
	FieldQuery      = "query"
	FieldScore      = "score"
	FieldDurationMs = "duration_ms"
	FieldLogSource  = "log_source"
	FieldRequestID  = "request_id"
)

const (
	EventToolOpen      = "tool_open"
	EventToolRun       = "tool_run"
	EventToolRunFailed = "tool_run_failed"
	EventRecentVisit   = "recent_visit"
	EventRecentClear   = "recent_clear"
	EventRecentCorrupt = "recent_corrupt"
	EventConfigReload  = "config_reload"
)

const (
	LogSourceCLI   = "cli"
	LogSourceShell = "shell"
	LogSourceAPI   = "api"
)

func EventField(event string) zap.Field {
	return zap.String(FieldEvent, event)
}

func SlugField(slug string) zap.Field {
	return zap.String(FieldSlug, slug)
}

func QueryField(query string) zap.Field {
	return zap.String(FieldQuery, query)
}

func ScoreField(score float64) zap.Field {
	return zap.Float64(FieldScore, score)
}

func DurationField(duration time.Duration) zap.Field {
	return zap.Int64(FieldDurationMs, duration.Milliseconds())
}

func RequestIDField(value string) zap.Field {
	return zap.String(FieldRequestID, value)
}

func LogSourceField(source string) zap.Field {
	return zap.String(FieldLogSource, source)
}
