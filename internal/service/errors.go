package service

import "errors"

// Caller-correctable validation errors. These must reach the caller
// verbatim; handlers translate them to 4xx responses.
var (
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrInvalidTimeWindow    = errors.New("interview time must be in the future")
	ErrDuplicateApplication = errors.New("candidate already has an active application for this job")
	ErrNotFound             = errors.New("application not found")
	ErrNotEligible          = errors.New("candidate did not pass the eligibility check")
)

// Infrastructure failures.
var (
	// ErrSchemaProvisionFailed means the single post-provisioning retry of a
	// document-path write failed. It is fatal for that write path only; a
	// status transition committed beforehand stays committed.
	ErrSchemaProvisionFailed = errors.New("schema provisioning failed")

	// ErrStoreUnavailable covers store errors not otherwise classified.
	ErrStoreUnavailable = errors.New("store unavailable")
)
