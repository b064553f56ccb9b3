/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package gocrypto

import "errors"

// pkcs7Pad pads in up to a whole block. One full block of padding is added when in is already aligned.
func pkcs7Pad(in []byte, blockSize int) []byte {
	pad := blockSize - len(in)%blockSize

	out := make([]byte, len(in)+pad)
	copy(out, in)

	for i := len(in); i < len(out); i++ {
		out[i] = byte(pad)
	}

	return out
}

// pkcs7Unpad strips and verifies PKCS#7 padding.
func pkcs7Unpad(in []byte, blockSize int) ([]byte, error) {
	if len(in) == 0 || len(in)%blockSize != 0 {
		return nil, errors.New("gocrypto: invalid padded length")
	}

	pad := int(in[len(in)-1])
	if pad == 0 || pad > blockSize {
		return nil, errors.New("gocrypto: invalid padding")
	}

	for _, b := range in[len(in)-pad:] {
		if int(b) != pad {
			return nil, errors.New("gocrypto: invalid padding")
		}
	}

	return in[:len(in)-pad], nil
}
