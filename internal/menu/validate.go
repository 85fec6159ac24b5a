package menu

import (
	"errors"
	"fmt"
)

// ErrMalformedItem is matched by every validation failure.
var ErrMalformedItem = errors.New("malformed menu item")

// ValidationError describes the first invalid item found in a tree.
type ValidationError struct {
	Path   []int
	Item   Item
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrMalformedItem, formatPath(e.Path), e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformedItem
}

// Validate checks the structural invariants of the tree.
func Validate(items []Item) error {
	var verr *ValidationError
	Walk(items, func(path []int, item *Item) bool {
		if verr != nil {
			return false
		}
		if reason := invalidReason(*item); reason != "" {
			verr = &ValidationError{Path: path, Item: *item, Reason: reason}
			return false
		}
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}

func invalidReason(item Item) string {
	switch item.Kind() {
	case TypeNormal, TypeRadio, TypeCheck:
		if item.Text == "" {
			return "missing text"
		}
	case TypeDivider:
		if len(item.Children) > 0 {
			return "divider has children"
		}
		if item.URL != "" {
			return "divider has url"
		}
	default:
		return fmt.Sprintf("unknown type %q", item.Type)
	}
	return ""
}
