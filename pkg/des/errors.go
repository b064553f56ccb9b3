/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

import "errors"

// Error kinds reported by the engine. Failures wrap one of these sentinels together with a message describing the
// specific cause.
var (
	// ErrInvalidKeyLength is returned when a key's bit length is not one of the recognized DES family lengths.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidMode is returned when a cipher or wrap mode is not recognized.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInputTooSmall is returned when wrap or unwrap input is shorter than one block.
	ErrInputTooSmall = errors.New("input too small")

	// ErrInputMisaligned is returned when wrap or unwrap input is not a multiple of the block size.
	ErrInputMisaligned = errors.New("input not block aligned")

	// ErrAllocationFailed is returned when the provider cannot produce a cipher context.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrInitializationFailed is returned when configuring an acquired cipher context fails.
	ErrInitializationFailed = errors.New("initialization failed")

	// ErrOperationFailed is returned when cipher processing fails.
	ErrOperationFailed = errors.New("operation failed")

	// ErrMissingKey is returned when an operation requires a key and none is set.
	ErrMissingKey = errors.New("missing key")

	// ErrMissingRandomSource is returned when key generation is attempted without a random source.
	ErrMissingRandomSource = errors.New("missing random source")
)
