/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package gocrypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

func TestWrapConstructions(t *testing.T) {
	p := New()

	wrapKinds := map[primitive.ID]int{
		primitive.DESKW:        8,
		primitive.DESEDEKW:     16,
		primitive.DESEDE3KW:    24,
		primitive.DESCBCKW:     8,
		primitive.DESEDECBCKW:  16,
		primitive.DESEDE3CBCKW: 24,
	}

	t.Run("success - round trip with one block of overhead", func(t *testing.T) {
		for id, keySize := range wrapKinds {
			handle, err := p.Resolve(id)
			require.NoError(t, err)

			keyData := testKey(16)

			wrapped := runContext(t, handle, testKey(keySize), nil, primitive.Encrypt, keyData, false)
			require.Equal(t, len(keyData)+8, len(wrapped), "%s", id)

			unwrapped := runContext(t, handle, testKey(keySize), nil, primitive.Decrypt, wrapped, false)
			require.Equal(t, keyData, unwrapped, "%s", id)
		}
	})

	t.Run("success - update buffers input until final", func(t *testing.T) {
		handle, err := p.Resolve(primitive.DESEDE3KW)
		require.NoError(t, err)

		ctx, err := handle.NewContext(testKey(24), nil, primitive.Encrypt)
		require.NoError(t, err)

		defer ctx.Close()

		require.NoError(t, ctx.SetPadding(false))

		out := make([]byte, 64)

		n, err := ctx.Update(out, testKey(8))
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = ctx.Update(out, testKey(8))
		require.NoError(t, err)
		require.Zero(t, n)

		fn, err := ctx.Final(out)
		require.NoError(t, err)
		require.Equal(t, 24, fn)
	})

	t.Run("error case - padding left enabled", func(t *testing.T) {
		handle, err := p.Resolve(primitive.DESKW)
		require.NoError(t, err)

		ctx, err := handle.NewContext(testKey(8), nil, primitive.Encrypt)
		require.NoError(t, err)

		defer ctx.Close()

		out := make([]byte, 32)

		_, err = ctx.Update(out, testKey(8))
		require.NoError(t, err)

		_, err = ctx.Final(out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "padding to be disabled")
	})

	t.Run("error case - corrupted wrapped data fails the integrity check", func(t *testing.T) {
		handle, err := p.Resolve(primitive.DESEDECBCKW)
		require.NoError(t, err)

		wrapped := runContext(t, handle, testKey(16), nil, primitive.Encrypt, testKey(8), false)
		wrapped[3] ^= 0x40

		ctx, err := handle.NewContext(testKey(16), nil, primitive.Decrypt)
		require.NoError(t, err)

		defer ctx.Close()

		require.NoError(t, ctx.SetPadding(false))

		out := make([]byte, 32)

		_, err = ctx.Update(out, wrapped)
		require.NoError(t, err)

		_, err = ctx.Final(out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "integrity check failed")
	})

	t.Run("error case - unwrapping a single block", func(t *testing.T) {
		// A valid wrap is always at least two blocks: header plus key data.
		handle, err := p.Resolve(primitive.DESKW)
		require.NoError(t, err)

		ctx, err := handle.NewContext(testKey(8), nil, primitive.Decrypt)
		require.NoError(t, err)

		defer ctx.Close()

		require.NoError(t, ctx.SetPadding(false))

		out := make([]byte, 32)

		_, err = ctx.Update(out, testKey(8))
		require.NoError(t, err)

		_, err = ctx.Final(out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "too short")
	})

	t.Run("error case - unaligned wrap data", func(t *testing.T) {
		handle, err := p.Resolve(primitive.DESKW)
		require.NoError(t, err)

		ctx, err := handle.NewContext(testKey(8), nil, primitive.Encrypt)
		require.NoError(t, err)

		defer ctx.Close()

		require.NoError(t, ctx.SetPadding(false))

		out := make([]byte, 32)

		_, err = ctx.Update(out, testKey(5))
		require.NoError(t, err)

		_, err = ctx.Final(out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "not block aligned")
	})

	t.Run("error case - wrapping no data", func(t *testing.T) {
		handle, err := p.Resolve(primitive.DESCBCKW)
		require.NoError(t, err)

		ctx, err := handle.NewContext(testKey(8), nil, primitive.Encrypt)
		require.NoError(t, err)

		defer ctx.Close()

		require.NoError(t, ctx.SetPadding(false))

		_, err = ctx.Final(make([]byte, 16))
		require.Error(t, err)
		require.Contains(t, err.Error(), "no key data")
	})

	t.Run("success - plain and CBC flavors produce different ciphertext", func(t *testing.T) {
		plain, err := p.Resolve(primitive.DESEDE3KW)
		require.NoError(t, err)

		cbc, err := p.Resolve(primitive.DESEDE3CBCKW)
		require.NoError(t, err)

		keyData := testKey(16)

		wrappedPlain := runContext(t, plain, testKey(24), nil, primitive.Encrypt, keyData, false)
		wrappedCBC := runContext(t, cbc, testKey(24), nil, primitive.Encrypt, keyData, false)
		require.NotEqual(t, wrappedPlain, wrappedCBC)
	})
}
