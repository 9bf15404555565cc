package hub

import "fmt"

// RepoType represents the kind of repository hosted on the Hub.
type RepoType string

const (
	// ModelRepo is a model repository (the default).
	ModelRepo RepoType = "models"
	// DatasetRepo is a dataset repository.
	DatasetRepo RepoType = "datasets"
	// SpaceRepo is a space repository.
	SpaceRepo RepoType = "spaces"
)

// IsValid checks whether the repo type is one of the known types.
func (t RepoType) IsValid() bool {
	switch t {
	case ModelRepo, DatasetRepo, SpaceRepo:
		return true
	}
	return false
}

// resolvePrefix returns the URL path prefix used in resolve (download)
// URLs. Model repositories live at the root of the host; dataset and
// space repositories are namespaced.
func (t RepoType) resolvePrefix() string {
	switch t {
	case DatasetRepo:
		return "datasets/"
	case SpaceRepo:
		return "spaces/"
	}
	return ""
}

// RepoRef identifies a repository state on the Hub.
type RepoRef struct {
	// ID is the repository identifier in "owner/name" form.
	ID string
	// Revision is the branch, tag, or commit SHA. Empty means the
	// repository's default branch ("main").
	Revision string
	// Type is the repository type. Empty means ModelRepo.
	Type RepoType
}

// repoType returns the effective repository type.
func (r RepoRef) repoType() RepoType {
	if r.Type == "" {
		return ModelRepo
	}
	return r.Type
}

// revisionOrDefault returns the effective revision for URL construction.
func (r RepoRef) revisionOrDefault() string {
	if r.Revision == "" {
		return DefaultRevision
	}
	return r.Revision
}

// String formats the ref as a human-readable identifier.
func (r RepoRef) String() string {
	if r.Revision != "" {
		return fmt.Sprintf("%s@%s", r.ID, r.Revision)
	}
	return r.ID
}

// RepoInfo is the metadata response for a repository query.
// Siblings preserve the order returned by the Hub; the API does not
// guarantee any particular sorting.
type RepoInfo struct {
	// ID is the repository identifier as reported by the Hub.
	ID string `json:"id"`
	// SHA is the commit SHA of the queried revision.
	SHA string `json:"sha"`
	// Private indicates whether the repository is private.
	Private bool `json:"private"`
	// Siblings is the per-file manifest of the repository.
	Siblings []Sibling `json:"siblings"`
}

// TotalSize returns the sum of all known sibling sizes in bytes.
// Entries without size metadata contribute zero.
func (i *RepoInfo) TotalSize() int64 {
	var total int64
	for _, s := range i.Siblings {
		total += s.FileSize()
	}
	return total
}

// Sibling is one file known to the repository at the queried revision.
type Sibling struct {
	// Rfilename is the file's path relative to the repository root.
	Rfilename string `json:"rfilename"`
	// Size is the file size in bytes. Only present when file metadata
	// was requested; zero otherwise.
	Size int64 `json:"size,omitempty"`
	// BlobID is the git blob identifier of the file.
	BlobID string `json:"blobId,omitempty"`
	// LFS holds LFS pointer metadata for LFS-tracked files.
	LFS *LFSInfo `json:"lfs,omitempty"`
}

// FileSize returns the actual file size, preferring the LFS object
// size for LFS-tracked files (Size covers only the pointer file).
func (s Sibling) FileSize() int64 {
	if s.LFS != nil {
		return s.LFS.Size
	}
	return s.Size
}

// LFSInfo describes the LFS object behind an LFS-tracked file.
type LFSInfo struct {
	// OID is the SHA-256 of the LFS object.
	OID string `json:"oid"`
	// Size is the LFS object size in bytes.
	Size int64 `json:"size"`
	// PointerSize is the size of the pointer file in bytes.
	PointerSize int `json:"pointerSize"`
}
