// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors classifying pipeline failures. Stage packages wrap these
// with fmt.Errorf("...: %w", ...) so the batch driver and tests can
// distinguish failure kinds with errors.Is.
var (
	// ErrInvalidPath marks a missing input path or a directory with no
	// matching files. Fatal when nothing can be processed at all.
	ErrInvalidPath = errors.New("invalid path")

	// ErrConversion marks a failure inside the HTML conversion engine.
	ErrConversion = errors.New("conversion failed")

	// ErrTranslation marks a translation API failure: auth, network,
	// rate limiting, or a malformed response.
	ErrTranslation = errors.New("translation failed")

	// ErrWrite marks a filesystem failure while writing output.
	ErrWrite = errors.New("write failed")
)
