// SPDX-License-Identifier: EPL-2.0

package mp3parser

import "errors"

var (
	ErrInvalidOffset = errors.New("offset must not be negative")
	ErrNoFrame       = errors.New("no MPEG audio frame found")
)
