package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tacogips/hublist/internal/debug"
	"github.com/tacogips/hublist/internal/hub"
	"github.com/tacogips/hublist/internal/report"
)

// ExportOptions contains options for a file-listing export.
type ExportOptions struct {
	// Repo is the repository identifier in "owner/name" form.
	Repo string
	// Revision is the branch, tag, or commit SHA (optional; defaults
	// to the repository's primary branch).
	Revision string
	// RepoType is the repository type (optional; defaults to models).
	RepoType hub.RepoType
	// OutputPath is the report destination file.
	OutputPath string
	// Token is the bearer token for private or gated repos (optional).
	Token string
	// Endpoint overrides the Hub base URL (optional).
	Endpoint string
	// Timeout is the metadata request timeout in seconds (0 = default).
	Timeout int
}

// ExportResult contains the results of a file-listing export.
type ExportResult struct {
	// FilesWritten is the number of manifest entries written to the report.
	FilesWritten int
	// OutputPath is the report destination file.
	OutputPath string
	// Revision is the effective revision used in download URLs.
	Revision string
	// Files contains the relative paths of all listed files, in manifest order.
	Files []string
}

// Export fetches the repository's file manifest from the Hub, derives
// a download URL per file, and writes the listing report. Every
// manifest entry is written, in the order the Hub returned it; nothing
// is filtered or deduplicated. The report is written only after the
// metadata query succeeds, so a failed query never touches the output
// path.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	debug.DebugSection("[app] Export workflow start")
	debug.DebugValue("[app] Repo", opts.Repo)
	debug.DebugValue("[app] Revision", opts.Revision)
	debug.DebugValue("[app] OutputPath", opts.OutputPath)

	if err := validateExportOptions(opts); err != nil {
		debug.Debug("[app] Export options validation failed: %v", err)
		return nil, NewValidationError("invalid export options", err)
	}

	client := newClient(opts.Endpoint, opts.Token, opts.Timeout)
	ref := hub.RepoRef{ID: opts.Repo, Revision: opts.Revision, Type: opts.RepoType}

	info, err := client.RepoInfo(ctx, ref)
	if err != nil {
		debug.Debug("[app] Metadata fetch failed: %v", err)
		return nil, NewFetchError("failed to fetch repository metadata", err)
	}
	debug.Debug("[app] Manifest contains %d files", len(info.Siblings))

	entries := make([]report.Entry, 0, len(info.Siblings))
	files := make([]string, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		entries = append(entries, report.Entry{
			Name: s.Rfilename,
			URL:  client.ResolveURL(ref, s.Rfilename),
		})
		files = append(files, s.Rfilename)
	}

	n, err := report.WriteFile(opts.OutputPath, entries)
	if err != nil {
		debug.Debug("[app] Report write failed: %v", err)
		return nil, NewWriteError("failed to write listing report", err)
	}

	revision := opts.Revision
	if revision == "" {
		revision = hub.DefaultRevision
	}

	return &ExportResult{
		FilesWritten: n,
		OutputPath:   opts.OutputPath,
		Revision:     revision,
		Files:        files,
	}, nil
}

// validateExportOptions checks export options for local preconditions.
func validateExportOptions(opts ExportOptions) error {
	if err := validateRepoOptions(opts.Repo, opts.RepoType); err != nil {
		return err
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// validateRepoOptions checks the repository identifier and type.
// Identifier shape is only lightly checked; the Hub remains the
// authority on whether an identifier resolves.
func validateRepoOptions(repo string, repoType hub.RepoType) error {
	if repo == "" {
		return fmt.Errorf("repository identifier is required")
	}
	if !strings.Contains(repo, "/") {
		return fmt.Errorf("repository identifier must be in 'owner/name' form: %s", repo)
	}
	if repoType != "" && !repoType.IsValid() {
		return fmt.Errorf("unknown repository type: %s", repoType)
	}
	return nil
}

// newClient constructs a Hub client from the shared option fields.
func newClient(endpoint, token string, timeoutSec int) *hub.Client {
	client := hub.NewClientWithToken(token)
	client.BaseURL = endpoint
	if timeoutSec > 0 {
		client.HTTPClient = &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}
	}
	return client
}
