// Package attr provides slog attribute helpers shared by every module, so log keys
// stay consistent across services and handlers.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func RoundID(key string, id sharedtypes.RoundID) slog.Attr {
	return slog.String(key, id.String())
}

func AttendeeID(key string, id sharedtypes.AttendeeID) slog.Attr {
	return slog.String(key, id.String())
}

func ScorecardID(key string, id sharedtypes.ScorecardID) slog.Attr {
	return slog.String(key, id.String())
}

func HoleID(key string, id sharedtypes.HoleID) slog.Attr {
	return slog.String(key, id.String())
}

type correlationIDKey struct{}

// WithCorrelationID stamps a correlation id onto the context so downstream log lines
// can be stitched together.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// ExtractCorrelationID returns the correlation id attribute for the context, or an
// empty-valued attribute when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return slog.String("correlation_id", id)
}
