// filepath: internal/provisioner/provisioner.go
package provisioner

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"envkeygen/internal/envfile"
	"envkeygen/internal/keygen"
	"envkeygen/internal/logging"
	"envkeygen/internal/logging/audit"

	"github.com/sirupsen/logrus"
)

// Confirmer answers a yes/no question. prompt.Prompter is the interactive one.
type Confirmer interface {
	Confirm(question string) bool
}

// DefaultDownstreamKey is the variable the Express server reads the key from.
const DefaultDownstreamKey = "VECTOR_STORAGE_API_KEY"

// Options configures a single provisioning run.
type Options struct {
	EnvPath       string
	SecretLength  int
	DownstreamKey string // variable name the consuming server expects, e.g. VECTOR_STORAGE_API_KEY
	Template      envfile.Template
}

// Result describes what a run did.
type Result struct {
	Cancelled bool
	Secret    string
	Path      string
}

type Provisioner struct {
	opts      Options
	confirmer Confirmer
	out       io.Writer
	logger    *logrus.Logger
	auditor   audit.AuditLogger

	now      func() time.Time
	generate func(byteLength int) (string, error)
}

// NewProvisioner wires a run. auditor may be nil; a nil logger falls back to
// one at logging.DefaultLevel on stderr.
func NewProvisioner(opts Options, confirmer Confirmer, out io.Writer, logger *logrus.Logger, auditor audit.AuditLogger) *Provisioner {
	if logger == nil {
		logger = logging.NewLogger(logging.DefaultLevel)
	}
	if opts.EnvPath == "" {
		opts.EnvPath = envfile.DefaultPath
	}
	if opts.SecretLength == 0 {
		opts.SecretLength = keygen.DefaultLength
	}
	if opts.DownstreamKey == "" {
		opts.DownstreamKey = DefaultDownstreamKey
	}
	if opts.Template.ServiceName == "" {
		opts.Template = envfile.DefaultTemplate()
	}
	return &Provisioner{
		opts:      opts,
		confirmer: confirmer,
		out:       out,
		logger:    logger,
		auditor:   auditor,
		now:       time.Now,
		generate:  keygen.GenerateSecret,
	}
}

// Run checks for an existing env file, asks before replacing it, then writes
// a freshly generated key and prints it with follow-up instructions.
// Declining the overwrite is not an error.
func (p *Provisioner) Run() (Result, error) {
	name := filepath.Base(p.opts.EnvPath)
	log := p.logger.WithField("path", p.opts.EnvPath)

	p.printf("🔐 %s - API Key Generator\n", p.opts.Template.ServiceName)
	p.println(rule())

	log.Debug("Checking for existing env file")
	exists, err := envfile.Exists(p.opts.EnvPath)
	if err != nil {
		return Result{}, err
	}

	if exists {
		log.Info("Env file already exists, asking before overwrite")
		question := fmt.Sprintf("\n⚠️  %s file already exists. Overwrite? (y/N): ", name)
		if !p.confirmer.Confirm(question) {
			log.Info("Overwrite declined")
			p.printf("❌ Cancelled. Existing %s file kept.\n", name)
			p.audit(audit.ActionEnvKept, nil)
			return Result{Cancelled: true, Path: p.opts.EnvPath}, nil
		}
	}

	p.println("\n🔑 Generating secure API key...")
	secret, err := p.generate(p.opts.SecretLength)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate API key: %w", err)
	}
	log.WithField("bytes", p.opts.SecretLength).Debug("Key generated")

	content := envfile.BuildContent(secret, envfile.Timestamp(p.now()), p.opts.Template)
	if err := envfile.Write(p.opts.EnvPath, content); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", p.opts.EnvPath, err)
	}
	if err := envfile.Verify(p.opts.EnvPath, secret); err != nil {
		return Result{}, fmt.Errorf("failed to verify %s: %w", p.opts.EnvPath, err)
	}
	log.Info("Env file written")

	action := audit.ActionEnvCreated
	if exists {
		action = audit.ActionEnvReplaced
	}
	p.audit(action, map[string]interface{}{"bytes": p.opts.SecretLength})

	location, err := filepath.Abs(p.opts.EnvPath)
	if err != nil {
		location = p.opts.EnvPath
	}
	p.printf("✅ %s file created successfully!\n", name)
	p.printf("📁 Location: %s\n", location)

	p.report(secret, name)

	return Result{Secret: secret, Path: p.opts.EnvPath}, nil
}

func (p *Provisioner) report(secret, name string) {
	p.println("\n" + rule())
	p.println("🎉 Setup Complete!")
	p.println(rule())
	p.println("\n📋 Your API Key:")
	p.printf("   %s\n", secret)
	p.println("\n⚠️  Keep this key secret! Don't commit to Git.")
	p.println("\n📝 Next steps:")
	p.printf("   1. Add %s to .gitignore (if not already)\n", name)
	p.printf("   2. Set %s on Railway/Cloud Run deployment\n", envfile.KeyVariable)
	p.println("   3. Add API key to your Express server .env:")
	p.printf("      %s=%s\n", p.opts.DownstreamKey, secret)
	p.println("\n🚀 Ready to deploy!")
	p.println("\n📖 See INTEGRATION-GUIDE.md for usage examples")
}

func (p *Provisioner) audit(action string, details map[string]interface{}) {
	if p.auditor == nil {
		return
	}
	p.auditor.Log(action, p.opts.EnvPath, details)
}

func (p *Provisioner) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Provisioner) println(s string) {
	fmt.Fprintln(p.out, s)
}

func rule() string {
	return strings.Repeat("=", 50)
}
