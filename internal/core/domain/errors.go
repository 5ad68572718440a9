package domain

import "errors"

// ============================================================================
// Workspace Errors
// ============================================================================

var (
	ErrWorkspaceNotFound   = errors.New("workspace not found")
	ErrMissingBaseImage    = errors.New("base image url is required")
	ErrInvalidCategory     = errors.New("product category is required")
	ErrInvalidCanvas       = errors.New("canvas width and height must be positive")
	ErrWorkspaceIDConflict = errors.New("workspace with this id already exists")
	ErrNothingSelected     = errors.New("selection must reference a zone or a logo")
)

// ============================================================================
// Layout Errors
// ============================================================================

// Not found errors
var (
	ErrZoneNotFound = errors.New("zone not found")
	ErrLogoNotFound = errors.New("logo not found")
)

// Validation errors
var (
	ErrInvalidShape   = errors.New("shape must be rectangle or circle")
	ErrInvalidLogoURL = errors.New("logo url is required")
	ErrInvalidMethod  = errors.New("branding method is required")
	ErrInvalidLabel   = errors.New("zone label is required")
)

// External dependency errors
var (
	ErrInvalidImage       = errors.New("invalid image")
	ErrImageLoad          = errors.New("load error")
	ErrNoZonesDetected    = errors.New("no zones detected")
	ErrDetectZonesFailed  = errors.New("failed to detect zones")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// ============================================================================
// Variant Errors
// ============================================================================

var (
	ErrVariantNotFound         = errors.New("variant not found")
	ErrInvalidVariantName      = errors.New("variant name is required")
	ErrCannotDeleteLastVariant = errors.New("cannot delete the last remaining variant")
	ErrABTestingDisabled       = errors.New("a/b testing disabled")
	ErrInvalidPerformance      = errors.New("performance counters must be non-negative")
)

// ============================================================================
// Mockup Errors
// ============================================================================

var (
	ErrCannotGenerateMockup = errors.New("cannot generate mockup")
	ErrRenderFailed         = errors.New("render request failed")
)
