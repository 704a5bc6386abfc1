package middleware

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// sensitiveFieldNames lists argument field names (case-insensitive) that
// must never appear in log output. Matched against both Go struct field
// names and map keys.
var sensitiveFieldNames = map[string]struct{}{
	"password":      {},
	"auth_token":    {},
	"authtoken":     {},
	"token":         {},
	"refresh_token": {},
	"refreshtoken":  {},
	"secret":        {},
	"credential":    {},
	"credentials":   {},
}

// Logging is the innermost link in the chain. It emits a start record and
// an end record per invocation carrying {correlation id, kind, target,
// duration, outcome, sanitised arg summary}.
func Logging() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (any, error) {
			logger := slog.Default().With(
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
				slog.String("kind", string(inv.Kind)),
				slog.String("target", inv.Target),
			)

			summary := redactedSummary(inv.Args)
			logger.Info("invocation started", slog.Any("args", summary))

			start := time.Now()
			result, err := next(ctx, inv)
			duration := time.Since(start)

			outcome := "ok"
			if err != nil {
				outcome = string(taigaerr.KindOf(err))
			}
			logger.Info("invocation completed",
				slog.String("outcome", outcome),
				slog.Duration("duration", duration),
			)
			return result, err
		}
	}
}

// redactedSummary returns a shallow copy of args (struct or map) with any
// sensitive field replaced by the literal string "[REDACTED]", satisfying
// the no-secret-in-logs property. Non-struct, non-map values pass through
// unchanged — tool arguments in this server are always one or the other.
func redactedSummary(args any) any {
	if args == nil {
		return nil
	}
	switch v := reflect.ValueOf(args); v.Kind() {
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key()
			key, ok := k.Interface().(string)
			if !ok {
				continue
			}
			if isSensitive(key) {
				out[key] = "[REDACTED]"
			} else {
				out[key] = iter.Value().Interface()
			}
		}
		return out
	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if isSensitive(f.Name) {
				out[f.Name] = "[REDACTED]"
			} else {
				out[f.Name] = v.Field(i).Interface()
			}
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return redactedSummary(v.Elem().Interface())
	default:
		return args
	}
}

func isSensitive(name string) bool {
	_, ok := sensitiveFieldNames[strings.ToLower(name)]
	return ok
}
