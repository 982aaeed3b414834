package logger

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with additional convenience methods
type Logger struct {
	*slog.Logger
}

// New creates a new structured logger
func New(level string) *Logger {
	// Parse log level
	var logLevel slog.Level
	switch level {
	case "debug", "DEBUG":
		logLevel = slog.LevelDebug
	case "info", "INFO":
		logLevel = slog.LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		logLevel = slog.LevelWarn
	case "error", "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Create handler with options
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	// Use JSON handler for production, text handler for development
	var handler slog.Handler
	if os.Getenv("ENVIRONMENT") == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRun creates a logger tagging every line with a planning run's
// correlation ID, the way a request-scoped logger tags every line with
// a request ID.
func (l *Logger) WithRun(runID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("run_id", runID)),
	}
}

// WithComponent creates a logger with component context
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("component", component)),
	}
}

// WithError logs an error with additional context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// PlanStart logs the start of a planning call.
func (l *Logger) PlanStart(nodeCount, edgeCount int) {
	l.Logger.Info("plan started",
		slog.Int("nodes", nodeCount),
		slog.Int("edges", edgeCount),
	)
}

// PlanSucceeded logs a successfully produced plan.
func (l *Logger) PlanSucceeded(nodeCount int) {
	l.Logger.Info("plan succeeded",
		slog.Int("nodes", nodeCount),
	)
}

// PlanFailed logs a planning failure with its error kind.
func (l *Logger) PlanFailed(kind string, err error) {
	l.Logger.Error("plan failed",
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

// TopologyBuilt logs the result of the topology generation phase.
func (l *Logger) TopologyBuilt(root string, nodeCount int, levelCounts map[int]int) {
	l.Logger.Info("topology built",
		slog.String("root", root),
		slog.Int("nodes", nodeCount),
		slog.Any("level_counts", levelCounts),
	)
}

// ChannelAssigned logs one node's completed channel assignment.
func (l *Logger) ChannelAssigned(node string, level int, channels []int) {
	l.Logger.Debug("channel assigned",
		slog.String("node", node),
		slog.Int("level", level),
		slog.Any("channels", channels),
	)
}
