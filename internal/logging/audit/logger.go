package audit

import (
	"io"
	"os/user"

	"envkeygen/internal/logging"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements AuditLogger
var _ AuditLogger = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events through logrus when enabled.
type LoggerAuditor struct {
	enabled bool
	actor   string
	logger  *logrus.Logger
}

// NewLoggerAuditor writes audit events as JSON lines to out. The actor is
// the OS user running the tool.
func NewLoggerAuditor(out io.Writer, enabled bool) *LoggerAuditor {
	logger := logging.NewLogger("info")
	logger.SetOutput(out)

	return &LoggerAuditor{
		enabled: enabled,
		actor:   currentUser(),
		logger:  logger,
	}
}

func (a *LoggerAuditor) Log(action string, resource string, details map[string]interface{}) {
	if a == nil || !a.enabled {
		return
	}

	// Construct fields
	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    a.actor,
		"audit_resource": resource,
	}

	// Add details flattened into the fields
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a specific prefix to make it easy to grep
	a.logger.WithFields(fields).Info("AUDIT EVENT")
}

func currentUser() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "unknown"
	}
	return u.Username
}
