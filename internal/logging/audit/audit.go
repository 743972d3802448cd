// filepath: internal/logging/audit/audit.go
package audit

// Interface for AuditLogger
// Records what happened to the env file; details must never carry the key.
type AuditLogger interface {
	Log(action string, resource string, details map[string]interface{})
}

// Actions recorded by the provisioner.
const (
	ActionEnvCreated  = "env_file.created"
	ActionEnvReplaced = "env_file.replaced"
	ActionEnvKept     = "env_file.kept"
)
