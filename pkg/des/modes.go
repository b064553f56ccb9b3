/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

// CipherMode enumerates the block cipher modes supported on the ordinary encrypt/decrypt path.
type CipherMode int

// Cipher modes.
const (
	CBC CipherMode = iota
	ECB
	OFB
	CFB
)

func (m CipherMode) String() string {
	switch m {
	case CBC:
		return "CBC"
	case ECB:
		return "ECB"
	case OFB:
		return "OFB"
	case CFB:
		return "CFB"
	default:
		return "unknown"
	}
}

// WrapMode enumerates the recognized key wrap flavors. Any other value supplied to the wrap/unwrap entry points is
// an invalid mode error.
type WrapMode int

const (
	// DESKeyWrap is the plain (ECB derived) key wrap flavor.
	DESKeyWrap WrapMode = iota
	// DESCBCKeyWrap is the CBC derived key wrap flavor.
	DESCBCKeyWrap
)

func (m WrapMode) String() string {
	switch m {
	case DESKeyWrap:
		return "DES-KEYWRAP"
	case DESCBCKeyWrap:
		return "DES-CBC-KEYWRAP"
	default:
		return "unknown"
	}
}
