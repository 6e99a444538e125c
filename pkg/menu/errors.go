package menu

import "errors"

var (
	// ErrAlreadyOpen is returned by Open while another menu is open.
	ErrAlreadyOpen = errors.New("a context menu is already open")

	// ErrBuildInProgress is returned by Open when called while a menu is
	// being built, for example from a callback invoked during the build.
	ErrBuildInProgress = errors.New("a context menu is being built")

	// ErrNilAnchor is returned by Open without an anchor element.
	ErrNilAnchor = errors.New("anchor element is required")

	// ErrNilSpec is returned by Open without a menu spec.
	ErrNilSpec = errors.New("menu spec is required")
)

// Reasons used to label dropped items, rejected opens and closes.
const (
	reasonUnknownType     = "unknown_type"
	reasonMissingChildren = "missing_children"
	reasonMissingRun      = "missing_run"

	reasonAlreadyOpen     = "already_open"
	reasonBuildInProgress = "build_in_progress"

	reasonAPI          = "api"
	reasonSelect       = "select"
	reasonEscape       = "escape"
	reasonOutsideClick = "outside_click"
	reasonContextMenu  = "context_menu"
)
