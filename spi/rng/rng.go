/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package rng provides the random source interface consumed by DES key generation.
package rng

// Source produces cryptographically secure random bytes.
type Source interface {
	// GenerateRandom returns count random bytes, or an error if the underlying source fails.
	GenerateRandom(count int) ([]byte, error)
}
