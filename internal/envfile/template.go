// filepath: internal/envfile/template.go
package envfile

import (
	"strconv"
	"strings"
	"time"
)

// KeyVariable is the live setting written into the env file.
const KeyVariable = "API_KEY"

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Template holds the values rendered around the key. The placeholders are
// written commented out; they only document what the service understands.
type Template struct {
	ServiceName    string
	AllowedOrigins []string
	Port           int
	Host           string
}

// DefaultTemplate returns the template for the Vector Storage Service.
func DefaultTemplate() Template {
	return Template{
		ServiceName:    "Vector Storage Service",
		AllowedOrigins: []string{"https://your-express-app.com", "https://your-frontend.com"},
		Port:           8000,
		Host:           "0.0.0.0",
	}
}

// Timestamp formats t for the "Generated" header line.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// BuildContent renders the full env file. It has no side effects: the same
// secret, timestamp and template always yield the same bytes.
func BuildContent(secret, timestamp string, tpl Template) string {
	var b strings.Builder

	b.WriteString("# " + tpl.ServiceName + " Configuration\n")
	b.WriteString("# Generated: " + timestamp + "\n")
	b.WriteString("\n")
	b.WriteString("# Security - IMPORTANT!\n")
	b.WriteString(KeyVariable + "=" + secret + "\n")
	b.WriteString("\n")
	b.WriteString("# CORS (Optional - comma separated origins)\n")
	b.WriteString("# ALLOWED_ORIGINS=" + strings.Join(tpl.AllowedOrigins, ",") + "\n")
	b.WriteString("\n")
	b.WriteString("# Server Configuration (Optional)\n")
	b.WriteString("# PORT=" + strconv.Itoa(tpl.Port) + "\n")
	b.WriteString("# HOST=" + tpl.Host + "\n")

	return b.String()
}
