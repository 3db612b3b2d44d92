package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peercolab/internal/common"
)

// Rejections returned by the access store. Error() is the message shown to
// the user; match with errors.Is against these values or against the
// common.Error* kinds.
var (
	ErrUserNotFound       = common.Reject(common.ErrorNotFound, "User does not exist.")
	ErrInvalidCredentials = common.Reject(common.ErrorPermissionDenied, "Incorrect username or password!")
	ErrInvalidTeacher     = common.Reject(common.ErrorInvalidInput, "Teacher's email is invalid!")

	ErrProjectNotFound  = common.Reject(common.ErrorNotFound, "Project does not exist.")
	ErrNotProjectOwner  = common.Reject(common.ErrorPermissionDenied, "You do not own that project.")
	ErrNotProjectMember = common.Reject(common.ErrorPermissionDenied, "You don't have permission to do that.")

	ErrFileExists   = common.Reject(common.ErrorConflict, "File with that name already exists!")
	ErrFileNotFound = common.Reject(common.ErrorNotFound, "That file doesn't exist!")
)

// storageFault marks err as a storage failure unless it is a rejection or a
// context error, which pass through unchanged.
func storageFault(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := common.IsRejection(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, common.ErrorStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
}
