/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package des implements selection, validation and orchestration for DES/3DES cipher operations on top of a
// pluggable primitive provider. It does not implement DES itself; concrete block cipher processing is delegated
// to the provider (see pkg/primitive/gocrypto for the default backend).
package des

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/cipherfoundry/desengine/spi/primitive"
	"github.com/cipherfoundry/desengine/spi/rng"
)

var logger = log.New("desengine/des")

// The block size is 64 bits regardless of key length or mode.
const blockSize = 64 >> 3

// Config holds engine options.
type Config struct {
	// AllowWeakKeys permits single length (56-bit) DES keys on the ordinary cipher path. When unset, 56-bit keys
	// are rejected with an invalid key length error. Key wrap lengths are not affected.
	AllowWeakKeys bool
}

// Engine is a DES/3DES cipher engine bound to a primitive provider.
//
// The current key and cipher mode consulted by the ordinary encrypt/decrypt path are instance state guarded by an
// internal lock. Wrap, unwrap and key generation take all arguments explicitly and carry no shared state; every
// invocation acquires a fresh cipher context and releases it before returning.
type Engine struct {
	provider primitive.Provider
	cfg      Config

	mu          sync.Mutex
	currentKey  *SymmetricKey
	currentMode CipherMode
}

// New returns an engine backed by the given primitive provider.
func New(provider primitive.Provider, cfg Config) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("des: primitive provider is nil")
	}

	return &Engine{provider: provider, cfg: cfg}, nil
}

// BlockSize returns the DES block size in bytes, independent of key length or mode.
func (e *Engine) BlockSize() int {
	return blockSize
}

// SetKey sets the engine's current key, consulted by the ordinary cipher path.
func (e *Engine) SetKey(key *SymmetricKey) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.currentKey = key
}

// SetCipherMode sets the engine's current cipher mode, consulted by the ordinary cipher path.
func (e *Engine) SetCipherMode(mode CipherMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.currentMode = mode
}

// ActivePrimitive resolves the primitive for the engine's current key and cipher mode.
func (e *Engine) ActivePrimitive() (primitive.ID, error) {
	key, mode := e.activeState()
	if key == nil {
		return "", fmt.Errorf("ActivePrimitive: no key set: %w", ErrMissingKey)
	}

	return selectCipherPrimitive(key.BitLen(), mode, e.cfg.AllowWeakKeys)
}

func (e *Engine) activeState() (*SymmetricKey, CipherMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.currentKey, e.currentMode
}

// WrapKey wraps the key material in `in` under the given key. For the two recognized wrap flavors the input must
// be at least one block long and block aligned.
func (e *Engine) WrapKey(key *SymmetricKey, mode WrapMode, in []byte) ([]byte, error) {
	if mode == DESKeyWrap || mode == DESCBCKeyWrap {
		if err := checkWrapLength(len(in), blockSize, "wrap"); err != nil {
			return nil, err
		}
	}

	return e.wrapUnwrap(key, mode, in, primitive.Encrypt)
}

// UnwrapKey unwraps key material previously produced by WrapKey with the same key and flavor. For the two
// recognized wrap flavors the input must be at least one block long and block aligned.
func (e *Engine) UnwrapKey(key *SymmetricKey, mode WrapMode, in []byte) ([]byte, error) {
	if mode == DESKeyWrap || mode == DESCBCKeyWrap {
		if err := checkWrapLength(len(in), blockSize, "unwrap"); err != nil {
			return nil, err
		}
	}

	return e.wrapUnwrap(key, mode, in, primitive.Decrypt)
}

// checkWrapLength applies the wrap/unwrap input preconditions: a minimum size of one block and block alignment.
// Only the two recognized wrap flavors are subject to these checks.
func checkWrapLength(insize, minsize int, operation string) error {
	if insize < minsize {
		logger.Errorf("key data to %s too small", operation)

		return fmt.Errorf("key data to %s too small: %w", operation, ErrInputTooSmall)
	}

	if insize%blockSize != 0 {
		logger.Errorf("key data to %s not aligned", operation)

		return fmt.Errorf("key data to %s not aligned: %w", operation, ErrInputMisaligned)
	}

	return nil
}

func (e *Engine) wrapUnwrap(key *SymmetricKey, mode WrapMode, in []byte, direction primitive.Direction) ([]byte, error) {
	prefix := ""
	if direction == primitive.Decrypt {
		prefix = "un"
	}

	if key == nil {
		return nil, fmt.Errorf("%swrap: no key: %w", prefix, ErrMissingKey)
	}

	id, err := selectWrapPrimitive(key.BitLen(), mode)
	if err != nil {
		logger.Errorf("failed to resolve %swrap primitive: %s", prefix, err)

		return nil, err
	}

	handle, err := e.provider.Resolve(id)
	if err != nil {
		logger.Errorf("failed to resolve %s from provider: %s", id, err)

		return nil, fmt.Errorf("%swrap: resolve %s: %w", prefix, id, ErrAllocationFailed)
	}

	// Wrap constructions are self contained, no IV is supplied.
	ctx, err := handle.NewContext(key.KeyBits(), nil, direction)
	if err != nil {
		logger.Errorf("failed to allocate cipher context for %swrap: %s", prefix, err)

		return nil, fmt.Errorf("%swrap: context for %s: %w", prefix, id, ErrAllocationFailed)
	}

	defer ctx.Close()

	// Padding is handled by the wrap construction itself.
	if err := ctx.SetPadding(false); err != nil {
		logger.Errorf("failed to initialise cipher %swrap operation: %s", prefix, err)

		return nil, fmt.Errorf("%swrap: disable padding on %s: %w", prefix, id, ErrInitializationFailed)
	}

	// One input block can expand into up to two output blocks.
	out := make([]byte, len(in)+2*handle.BlockSize()-1)

	n, err := ctx.Update(out, in)
	if err != nil {
		logger.Errorf("failed cipher %swrap operation: %s", prefix, err)

		return nil, fmt.Errorf("%swrap: update on %s: %w", prefix, id, ErrOperationFailed)
	}

	fn, err := ctx.Final(out[n:])
	if err != nil {
		logger.Errorf("failed cipher %swrap operation: %s", prefix, err)

		return nil, fmt.Errorf("%swrap: finalize on %s: %w", prefix, id, ErrOperationFailed)
	}

	return out[:n+fn], nil
}

// Encrypt processes plaintext through the primitive selected by the current key and cipher mode. The iv may be nil
// for ECB mode. Padding is left to the provider's defaults, so ECB and CBC ciphertext carries block padding.
func (e *Engine) Encrypt(iv, plaintext []byte) ([]byte, error) {
	return e.cipherData(iv, plaintext, primitive.Encrypt)
}

// Decrypt reverses Encrypt for the current key and cipher mode.
func (e *Engine) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	return e.cipherData(iv, ciphertext, primitive.Decrypt)
}

func (e *Engine) cipherData(iv, in []byte, direction primitive.Direction) ([]byte, error) {
	key, mode := e.activeState()
	if key == nil {
		return nil, fmt.Errorf("cipher: no key set: %w", ErrMissingKey)
	}

	id, err := selectCipherPrimitive(key.BitLen(), mode, e.cfg.AllowWeakKeys)
	if err != nil {
		return nil, err
	}

	handle, err := e.provider.Resolve(id)
	if err != nil {
		logger.Errorf("failed to resolve %s from provider: %s", id, err)

		return nil, fmt.Errorf("cipher: resolve %s: %w", id, ErrAllocationFailed)
	}

	ctx, err := handle.NewContext(key.KeyBits(), iv, direction)
	if err != nil {
		logger.Errorf("failed to allocate cipher context for %s: %s", id, err)

		return nil, fmt.Errorf("cipher: context for %s: %w", id, ErrAllocationFailed)
	}

	defer ctx.Close()

	out := make([]byte, len(in)+2*handle.BlockSize()-1)

	n, err := ctx.Update(out, in)
	if err != nil {
		logger.Errorf("failed cipher operation on %s: %s", id, err)

		return nil, fmt.Errorf("cipher: update on %s: %w", id, ErrOperationFailed)
	}

	fn, err := ctx.Final(out[n:])
	if err != nil {
		logger.Errorf("failed cipher operation on %s: %s", id, err)

		return nil, fmt.Errorf("cipher: finalize on %s: %w", id, ErrOperationFailed)
	}

	return out[:n+fn], nil
}

// GenerateKey creates a fresh DES family key of the target bit length. Random material is requested from the
// source and every byte is parity corrected so the result is a valid DES key.
func (e *Engine) GenerateKey(targetBitLen uint, source rng.Source) (*SymmetricKey, error) {
	if source == nil {
		return nil, fmt.Errorf("GenerateKey: %w", ErrMissingRandomSource)
	}

	if targetBitLen == 0 {
		return nil, fmt.Errorf("GenerateKey: zero target length: %w", ErrInvalidKeyLength)
	}

	// The parity bit of each byte is not counted toward the key's bit length.
	material, err := source.GenerateRandom(int(targetBitLen / 7))
	if err != nil {
		return nil, fmt.Errorf("GenerateKey: random source failed: %w", err)
	}

	// Force odd parity on every byte.
	for i := range material {
		material[i] = oddParity[material[i]]
	}

	key := NewSymmetricKey(targetBitLen)
	if err := key.SetKeyBits(material); err != nil {
		return nil, fmt.Errorf("GenerateKey: install key material: %w", err)
	}

	return key, nil
}
