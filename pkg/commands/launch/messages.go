package launch

import (
	"embed"
	"strings"
	"text/template"

	"github.com/arthur-debert/packsmith/pkg/errors"
)

//go:embed msgs/*.md
var msgFS embed.FS

var msgTemplates = template.Must(
	template.New("msgs").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(msgFS, "msgs/*.md"),
)

const (
	msgEnvMissing = "env_missing.md"
	msgAppFailure = "app_failure.md"
	msgAppExited  = "app_exited.md"
	msgDryRun     = "dry_run.md"
)

type messageData struct {
	Interpreters []string
	VersionFlag  string
	Interpreter  string
	EntryPoint   string
	WorkingDir   string
	CommandLine  string
	ExitCode     int
}

func renderMessage(name string, data messageData) (string, error) {
	var b strings.Builder
	if err := msgTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to render message %s", name)
	}
	return b.String(), nil
}
