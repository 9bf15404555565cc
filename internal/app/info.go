package app

import (
	"context"

	"github.com/tacogips/hublist/internal/debug"
	"github.com/tacogips/hublist/internal/hub"
)

// InfoOptions contains options for a repository metadata query.
type InfoOptions struct {
	// Repo is the repository identifier in "owner/name" form.
	Repo string
	// Revision is the branch, tag, or commit SHA (optional).
	Revision string
	// RepoType is the repository type (optional; defaults to models).
	RepoType hub.RepoType
	// Token is the bearer token for private or gated repos (optional).
	Token string
	// Endpoint overrides the Hub base URL (optional).
	Endpoint string
	// Timeout is the metadata request timeout in seconds (0 = default).
	Timeout int
}

// InfoFile describes one file in the repository manifest.
type InfoFile struct {
	// Path is the file's path relative to the repository root.
	Path string `json:"path" yaml:"path"`
	// Size is the file size in bytes (LFS object size for LFS files).
	Size int64 `json:"size" yaml:"size"`
	// LFS indicates whether the file is LFS-tracked.
	LFS bool `json:"lfs" yaml:"lfs"`
	// DownloadURL is the constructed download URL for the file.
	DownloadURL string `json:"download_url" yaml:"download_url"`
}

// InfoResult contains the results of a repository metadata query.
type InfoResult struct {
	// ID is the repository identifier as reported by the Hub.
	ID string `json:"id" yaml:"id"`
	// SHA is the commit SHA of the queried revision.
	SHA string `json:"sha" yaml:"sha"`
	// Revision is the effective revision used in download URLs.
	Revision string `json:"revision" yaml:"revision"`
	// Private indicates whether the repository is private.
	Private bool `json:"private" yaml:"private"`
	// FileCount is the number of files in the manifest.
	FileCount int `json:"file_count" yaml:"file_count"`
	// TotalSize is the sum of known file sizes in bytes.
	TotalSize int64 `json:"total_size" yaml:"total_size"`
	// Files lists the manifest entries in Hub order.
	Files []InfoFile `json:"files" yaml:"files"`
}

// Info fetches repository metadata and summarizes the file manifest.
func Info(ctx context.Context, opts InfoOptions) (*InfoResult, error) {
	debug.DebugSection("[app] Info workflow start")
	debug.DebugValue("[app] Repo", opts.Repo)
	debug.DebugValue("[app] Revision", opts.Revision)

	if err := validateRepoOptions(opts.Repo, opts.RepoType); err != nil {
		return nil, NewValidationError("invalid info options", err)
	}

	client := newClient(opts.Endpoint, opts.Token, opts.Timeout)
	ref := hub.RepoRef{ID: opts.Repo, Revision: opts.Revision, Type: opts.RepoType}

	info, err := client.RepoInfo(ctx, ref)
	if err != nil {
		return nil, NewFetchError("failed to fetch repository metadata", err)
	}

	revision := opts.Revision
	if revision == "" {
		revision = hub.DefaultRevision
	}

	files := make([]InfoFile, 0, len(info.Siblings))
	for _, s := range info.Siblings {
		files = append(files, InfoFile{
			Path:        s.Rfilename,
			Size:        s.FileSize(),
			LFS:         s.LFS != nil,
			DownloadURL: client.ResolveURL(ref, s.Rfilename),
		})
	}

	return &InfoResult{
		ID:        info.ID,
		SHA:       info.SHA,
		Revision:  revision,
		Private:   info.Private,
		FileCount: len(files),
		TotalSize: info.TotalSize(),
		Files:     files,
	}, nil
}
