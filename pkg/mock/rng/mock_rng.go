/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package rng provides mock random sources for testing key generation.
package rng

// Source mocks a random source with deterministic output. When Bytes is unset a counting byte pattern is
// produced, so generated material is reproducible across runs.
type Source struct {
	Bytes    []byte
	Err      error
	Requests []int
}

// GenerateRandom records count and returns the mocked bytes, pattern fill or error.
func (s *Source) GenerateRandom(count int) ([]byte, error) {
	s.Requests = append(s.Requests, count)

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]byte, count)

	if len(s.Bytes) >= count {
		copy(out, s.Bytes[:count])

		return out, nil
	}

	for i := range out {
		out[i] = byte(i)
	}

	return out, nil
}
