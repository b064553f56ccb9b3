/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package primitive provides the cipher primitive provider interface consumed by the DES engine. This includes the
// provider interface necessary for plugging in concrete block cipher backends and the list of primitive identifiers
// recognized by the engine.
package primitive

// ID identifies a concrete cipher algorithm and mode implementation supplied by a provider.
type ID string

// Ordinary cipher primitives, one per (key length, mode) combination.
const (
	// DESCBC primitive value, single length DES in CBC mode.
	DESCBC ID = "DES-CBC"
	// DESEDECBC primitive value, double length 3DES in CBC mode.
	DESEDECBC ID = "DES-EDE-CBC"
	// DESEDE3CBC primitive value, triple length 3DES in CBC mode.
	DESEDE3CBC ID = "DES-EDE3-CBC"
	// DESECB primitive value, single length DES in ECB mode.
	DESECB ID = "DES-ECB"
	// DESEDEECB primitive value, double length 3DES in ECB mode.
	DESEDEECB ID = "DES-EDE-ECB"
	// DESEDE3ECB primitive value, triple length 3DES in ECB mode.
	DESEDE3ECB ID = "DES-EDE3-ECB"
	// DESOFB primitive value, single length DES in OFB mode.
	DESOFB ID = "DES-OFB"
	// DESEDEOFB primitive value, double length 3DES in OFB mode.
	DESEDEOFB ID = "DES-EDE-OFB"
	// DESEDE3OFB primitive value, triple length 3DES in OFB mode.
	DESEDE3OFB ID = "DES-EDE3-OFB"
	// DESCFB primitive value, single length DES in CFB mode.
	DESCFB ID = "DES-CFB"
	// DESEDECFB primitive value, double length 3DES in CFB mode.
	DESEDECFB ID = "DES-EDE-CFB"
	// DESEDE3CFB primitive value, triple length 3DES in CFB mode.
	DESEDE3CFB ID = "DES-EDE3-CFB"
)

// Key wrap primitives. Wrap constructions manage their own padding and expansion semantics and are keyed on raw
// (parity inclusive) key lengths.
const (
	// DESKW primitive value, single length DES plain key wrap (ECB derived).
	DESKW ID = "DES-KW"
	// DESEDEKW primitive value, double length 3DES plain key wrap (ECB derived).
	DESEDEKW ID = "DES-EDE-KW"
	// DESEDE3KW primitive value, triple length 3DES plain key wrap (ECB derived).
	DESEDE3KW ID = "DES-EDE3-KW"
	// DESCBCKW primitive value, single length DES CBC key wrap.
	DESCBCKW ID = "DES-CBC-KW"
	// DESEDECBCKW primitive value, double length 3DES CBC key wrap.
	DESEDECBCKW ID = "DES-EDE-CBC-KW"
	// DESEDE3CBCKW primitive value, triple length 3DES CBC key wrap.
	DESEDE3CBCKW ID = "DES-EDE3-CBC-KW"
)

// Direction selects the processing direction of a cipher context.
type Direction int

const (
	// Encrypt processes plaintext into ciphertext (the wrap direction for key wrap primitives).
	Encrypt Direction = iota
	// Decrypt processes ciphertext into plaintext (the unwrap direction for key wrap primitives).
	Decrypt
)

// Provider supplies cipher primitive implementations by identifier.
type Provider interface {
	// Resolve returns a handle for the primitive identified by id.
	// Returns an error if the provider does not implement id.
	Resolve(id ID) (Handle, error)
}

// Handle describes a resolved primitive and creates cipher contexts for it.
type Handle interface {
	// ID returns the identifier this handle was resolved for.
	ID() ID
	// BlockSize returns the primitive's block size in bytes.
	BlockSize() int
	// NewContext creates a cipher context keyed with the raw key bytes, processing in the given direction.
	// The iv may be nil for primitives that manage their own chaining state (wrap constructions take no IV).
	NewContext(key, iv []byte, direction Direction) (Context, error)
}

// Context is a transient cipher processing context. It is acquired, used and closed within a single operation and
// must not be shared across calls.
type Context interface {
	// SetPadding enables or disables automatic padding. Contexts start with padding enabled.
	SetPadding(enabled bool) error
	// Update processes in and writes produced bytes to dst, returning the number of bytes written.
	// A context may withhold data until Final.
	Update(dst, in []byte) (int, error)
	// Final completes processing, writing any remaining bytes to dst and returning the number written.
	Final(dst []byte) (int, error)
	// Close releases the context. It is safe to call after a failed operation.
	Close()
}
