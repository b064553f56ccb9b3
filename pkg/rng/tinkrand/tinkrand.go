/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package tinkrand provides the default random source for DES key generation, backed by Tink's subtle random
// helper.
package tinkrand

import (
	"fmt"

	"github.com/google/tink/go/subtle/random"
)

// Source produces random bytes from the platform's cryptographically secure source.
type Source struct{}

// New returns a Source.
func New() *Source {
	return &Source{}
}

// GenerateRandom returns count random bytes.
func (s *Source) GenerateRandom(count int) ([]byte, error) {
	if count < 0 {
		return nil, fmt.Errorf("tinkrand: invalid byte count %d", count)
	}

	return random.GetRandomBytes(uint32(count)), nil
}
