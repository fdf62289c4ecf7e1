package source

import (
	"context"
	"fmt"
	"strings"
)

const (
	githubPrefix    = "https://github.com/"
	rawGithubPrefix = "https://raw.githubusercontent.com/"
)

// GitHubProvider fetches a file shown on github.com through its raw URL
type GitHubProvider struct{}

func init() {
	RegisterProvider(&GitHubProvider{})
}

func (p *GitHubProvider) Type() string {
	return "github"
}

func (p *GitHubProvider) CanHandle(src string) bool {
	return strings.HasPrefix(src, githubPrefix)
}

func (p *GitHubProvider) Fetch(ctx context.Context, src string, opts FetchOptions) ([]byte, error) {
	rawURL, err := RawGitHubURL(src)
	if err != nil {
		return nil, &SourceError{Op: "github fetch", Source: src, Err: err}
	}
	return httpGet(ctx, src, rawURL, opts)
}

// RawGitHubURL converts https://github.com/<owner>/<repo>/blob/<ref>/<path>
// to https://raw.githubusercontent.com/<owner>/<repo>/<ref>/<path>.
// Anything after the path, such as a query string, is kept as is.
func RawGitHubURL(url string) (string, error) {
	if !strings.HasPrefix(url, githubPrefix) {
		return "", ErrInvalidGitHubURL
	}

	parts := strings.Split(strings.TrimPrefix(url, githubPrefix), "/")
	if len(parts) < 5 || parts[2] != "blob" {
		return "", fmt.Errorf("%w: expected %sowner/repo/blob/ref/path", ErrInvalidGitHubURL, githubPrefix)
	}

	owner, repo, ref := parts[0], parts[1], parts[3]
	path := strings.Join(parts[4:], "/")
	if owner == "" || repo == "" || ref == "" || path == "" {
		return "", fmt.Errorf("%w: empty owner, repo, ref or path", ErrInvalidGitHubURL)
	}

	return rawGithubPrefix + owner + "/" + repo + "/" + ref + "/" + path, nil
}
