package source

import (
	"context"
	"os"
	"path/filepath"
)

// FileProvider reads settings from the local filesystem
type FileProvider struct{}

func init() {
	RegisterProvider(&FileProvider{})
}

func (p *FileProvider) Type() string {
	return "file"
}

func (p *FileProvider) CanHandle(src string) bool {
	return src != ""
}

func (p *FileProvider) Fetch(_ context.Context, src string, _ FetchOptions) ([]byte, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return nil, &SourceError{Op: "resolve path", Source: src, Err: err}
	}

	// Resolve symlinks so errors name the file actually read
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &SourceError{Op: "resolve path", Source: src, Err: err}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, &SourceError{Op: "read file", Source: resolved, Err: err}
	}
	return data, nil
}
