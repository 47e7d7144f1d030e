package domain

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Services wrap these so handlers can map any error to a
// transport status with a single errors.Is per class.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid input")
)

var (
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	ErrCheckNotFound       = fmt.Errorf("check %w", ErrNotFound)
	ErrCompanyNotFound     = fmt.Errorf("company %w", ErrNotFound)
	ErrSellerNotFound      = fmt.Errorf("seller %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrAdminNotFound       = fmt.Errorf("admin %w", ErrNotFound)
	ErrCommentNotFound     = fmt.Errorf("comment %w", ErrNotFound)
)

var (
	// ErrCompanyNameMismatch is returned when a tax id is reused under a
	// different display name. The existing record is never overwritten.
	ErrCompanyNameMismatch = fmt.Errorf("company with this inn already exists under a different name: %w", ErrConflict)
	ErrCompanyINNTaken     = fmt.Errorf("company with this inn already exists: %w", ErrConflict)
	ErrSellerINNTaken      = fmt.Errorf("seller with this inn already exists: %w", ErrConflict)
	ErrUserNameTaken       = fmt.Errorf("user with this name already exists: %w", ErrConflict)
	ErrAdminLoginTaken     = fmt.Errorf("admin with this login already exists: %w", ErrConflict)
	ErrLastAdmin           = fmt.Errorf("cannot delete the last admin: %w", ErrConflict)
)

var (
	ErrSaveNotAllowed     = fmt.Errorf("user has no permission to save companies: %w", ErrForbidden)
	ErrSuperAdminRequired = fmt.Errorf("super admin privileges required: %w", ErrForbidden)
	ErrUserBlocked        = fmt.Errorf("user is blocked: %w", ErrForbidden)
	ErrNotCommentAuthor   = fmt.Errorf("no permission to delete this comment: %w", ErrForbidden)
	ErrSelfDelete         = fmt.Errorf("cannot delete own account: %w", ErrForbidden)
	ErrNotOwner           = fmt.Errorf("application belongs to another user: %w", ErrForbidden)
)

var (
	ErrUnknownStatus  = fmt.Errorf("unknown status tag: %w", ErrValidation)
	ErrEmptyStatusSet = fmt.Errorf("status set cannot be empty: %w", ErrValidation)
	ErrBadCommission  = fmt.Errorf("commission must be between 0 and 100: %w", ErrValidation)
	ErrBadCheckDate   = fmt.Errorf("check date must be DD/MM/YY or DD/MM/YYYY: %w", ErrValidation)
	ErrBadINN         = fmt.Errorf("malformed inn: %w", ErrValidation)
	ErrBadSellerType  = fmt.Errorf("seller type must be white or elite: %w", ErrValidation)
)

// ErrInvalidCredentials deliberately stays outside the taxonomy: handlers map
// it to 401 rather than 403.
var ErrInvalidCredentials = errors.New("invalid login or password")
