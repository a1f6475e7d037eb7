// Package source loads the text lw formats: from a file, a reader, or a
// file as it existed at some git revision.
package source

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotFound is returned when a revision has no file at the given path.
var ErrNotFound = errors.New("file not found")

// Read drains r.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// ReadFile reads name from fs.
func ReadFile(fs billy.Filesystem, name string) (string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return Read(f)
}

// OpenRepo opens the git repository containing dir.
func OpenRepo(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	return repo, nil
}

// ReadRevision returns the contents of name as committed at rev (a branch,
// tag, hash, or expression such as "HEAD~2").
func ReadRevision(repo *git.Repository, rev, name string) (string, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("commit %s: %w", hash, err)
	}

	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	f, err := commit.File(clean)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", fmt.Errorf("%s at %s: %w", clean, rev, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s at %s: %w", clean, rev, err)
	}
	return f.Contents()
}
