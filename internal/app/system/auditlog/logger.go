// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"github.com/dalemusser/lawcrm/internal/app/system/reqlog"
	"go.uber.org/zap"
)

// Actions recorded for document writes.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event describes one successful write.
type Event struct {
	Action string
	Entity string   // customer, product, order, factfind, settings
	ID     string   // external id; empty for the settings singleton
	Fields []string // updated field names, for ActionUpdate
}

// Logger writes an audit line to zap for every successful document write.
// A nil Logger is a no-op, so handlers and tests may leave it unset.
type Logger struct {
	zapLog *zap.Logger
}

// New creates an audit Logger. All entries carry the field audit=true so
// they can be routed separately from access logs.
func New(zapLog *zap.Logger) *Logger {
	if zapLog == nil {
		return nil
	}
	return &Logger{zapLog: zapLog.With(zap.Bool("audit", true))}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for reverse proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// Record logs event for the request r.
func (l *Logger) Record(r *http.Request, event Event) {
	if l == nil {
		return
	}
	fields := []zap.Field{
		zap.String("action", event.Action),
		zap.String("entity", event.Entity),
		zap.String("ip", getClientIP(r)),
	}
	if event.ID != "" {
		fields = append(fields, zap.String("id", event.ID))
	}
	if len(event.Fields) > 0 {
		fields = append(fields, zap.Strings("fields", event.Fields))
	}
	if id := reqlog.ID(r.Context()); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	l.zapLog.Info("audit event", fields...)
}
