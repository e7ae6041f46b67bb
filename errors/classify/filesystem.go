package classify

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/ephais/go/errors"
)

// FileSystem classifies file system failures as CategoryFileSystem.
//
// Recognized: *fs.PathError (metadata op, path), *os.LinkError (metadata
// op, old, new) and anything matching fs.ErrNotExist, fs.ErrPermission,
// fs.ErrExist or fs.ErrClosed.
func FileSystem() Classifier {
	return ClassifierFunc(classifyFileSystem)
}

func classifyFileSystem(err error) (errors.Category, map[string]string, bool) {
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return errors.CategoryFileSystem, map[string]string{
			"op":   pathErr.Op,
			"path": pathErr.Path,
		}, true
	}

	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		return errors.CategoryFileSystem, map[string]string{
			"op":  linkErr.Op,
			"old": linkErr.Old,
			"new": linkErr.New,
		}, true
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist),
		stderrors.Is(err, fs.ErrPermission),
		stderrors.Is(err, fs.ErrExist),
		stderrors.Is(err, fs.ErrClosed):
		return errors.CategoryFileSystem, nil, true
	}

	return errors.CategoryNone, nil, false
}
