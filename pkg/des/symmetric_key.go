/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

import "errors"

// SymmetricKey holds DES family key material together with its advertised bit length.
//
// DES family bit lengths are overloaded: the ordinary cipher path expects effective lengths (56, 112 or 168, parity
// bits excluded) while the key wrap path expects raw lengths (64, 128 or 192, parity bits included). The bit length
// is fixed at construction; the engine reads but never mutates an externally supplied key.
type SymmetricKey struct {
	bits   []byte
	bitLen uint
}

// NewSymmetricKey returns an empty key advertising the given bit length.
func NewSymmetricKey(bitLen uint) *SymmetricKey {
	return &SymmetricKey{bitLen: bitLen}
}

// BitLen returns the key's advertised bit length.
func (k *SymmetricKey) BitLen() uint {
	return k.bitLen
}

// KeyBits returns the raw key material. The returned slice is not copied and must be treated as read only.
func (k *SymmetricKey) KeyBits() []byte {
	return k.bits
}

// SetKeyBits installs key material into the key. Empty material is rejected.
func (k *SymmetricKey) SetKeyBits(bits []byte) error {
	if len(bits) == 0 {
		return errors.New("SetKeyBits: empty key material")
	}

	k.bits = make([]byte, len(bits))
	copy(k.bits, bits)

	return nil
}
