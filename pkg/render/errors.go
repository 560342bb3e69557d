package render

import (
	"errors"
	"fmt"
)

// ErrMissingLinkURL marks a link token with an empty target. The pass keeps
// going with a placeholder target so later errors and output still get
// collected, but the render as a whole fails.
var ErrMissingLinkURL = errors.New("there is a link that is missing a URL")

// UnresolvedLinkError reports an internal reference that has no entry in
// the permalink table. Fatal to the render.
type UnresolvedLinkError struct {
	Link string
}

func (e *UnresolvedLinkError) Error() string {
	return fmt.Sprintf("internal link %s not found", e.Link)
}

// ShortcodeError wraps a template failure while rendering a shortcode.
type ShortcodeError struct {
	Name string
	Err  error
}

func (e *ShortcodeError) Error() string {
	return fmt.Sprintf("render shortcode %q: %v", e.Name, e.Err)
}

func (e *ShortcodeError) Unwrap() error { return e.Err }
