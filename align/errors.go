// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

// ErrUnsortedKeys indicates that an input key slice is not sorted ascending.
// Returned only when the order check is enabled (the default).
var ErrUnsortedKeys = errors.New("align: keys are not sorted ascending")

// alignErrorf wraps err with the operation tag, matching the "Op: %w" layout
// used across the module.
func alignErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
