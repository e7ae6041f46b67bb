package classify

import (
	stderrors "errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/ephais/go/errors"
)

// Git classifies go-git sentinel errors.
//
// Authentication and authorization failures map to CategoryAuth, remote
// repository failures to CategoryNetwork and local repository state
// failures to CategoryFileSystem. Invalid options map to CategoryDataFormat
// and missing references or remotes to CategoryExternal.
func Git() Classifier {
	return ClassifierFunc(classifyGit)
}

//nolint:gocyclo,cyclop // each case is a flat sentinel mapping
func classifyGit(err error) (errors.Category, map[string]string, bool) {
	switch {
	case stderrors.Is(err, transport.ErrAuthenticationRequired),
		stderrors.Is(err, transport.ErrAuthorizationFailed),
		stderrors.Is(err, transport.ErrInvalidAuthMethod):
		return errors.CategoryAuth, nil, true

	case stderrors.Is(err, transport.ErrRepositoryNotFound),
		stderrors.Is(err, transport.ErrEmptyRemoteRepository):
		return errors.CategoryNetwork, nil, true

	case stderrors.Is(err, gogit.ErrRepositoryNotExists),
		stderrors.Is(err, gogit.ErrRepositoryAlreadyExists),
		stderrors.Is(err, gogit.ErrWorktreeNotClean),
		stderrors.Is(err, gogit.ErrDestinationExists),
		stderrors.Is(err, gogit.ErrEmptyCommit):
		return errors.CategoryFileSystem, nil, true

	case stderrors.Is(err, gogit.ErrMissingURL),
		stderrors.Is(err, gogit.ErrMissingAuthor),
		stderrors.Is(err, gogit.ErrMissingName),
		stderrors.Is(err, gogit.ErrHashOrReference),
		stderrors.Is(err, gogit.ErrBranchHashExclusive):
		return errors.CategoryDataFormat, nil, true

	case stderrors.Is(err, gogit.ErrRemoteNotFound),
		stderrors.Is(err, gogit.ErrRemoteExists),
		stderrors.Is(err, gogit.ErrBranchExists),
		stderrors.Is(err, plumbing.ErrReferenceNotFound):
		return errors.CategoryExternal, nil, true
	}

	return errors.CategoryNone, nil, false
}
