package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"collection-env/internal/ports"
)

type EnvFileAdapter struct{}

func NewEnvFileAdapter() EnvFileAdapter {
	return EnvFileAdapter{}
}

func (a EnvFileAdapter) Write(path string, lines []string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("env file path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create env file directory").
			WithCause(err)
	}
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write env file").
			WithCause(err)
	}
	return nil
}

var _ ports.EnvFileWriterPort = EnvFileAdapter{}
