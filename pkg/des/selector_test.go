/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

func TestSelectCipherPrimitive(t *testing.T) {
	t.Run("success - every key length and mode maps to a distinct primitive", func(t *testing.T) {
		seen := map[primitive.ID]struct{}{}

		for _, bitLen := range []uint{56, 112, 168} {
			for _, mode := range []CipherMode{CBC, ECB, OFB, CFB} {
				id, err := selectCipherPrimitive(bitLen, mode, true)
				require.NoError(t, err)
				require.NotEmpty(t, id)

				_, dup := seen[id]
				require.False(t, dup, "duplicate primitive %s for %d/%s", id, bitLen, mode)

				seen[id] = struct{}{}
			}
		}

		require.Len(t, seen, 12)
	})

	t.Run("error case - unrecognized key lengths", func(t *testing.T) {
		for _, bitLen := range []uint{0, 40, 64, 128, 192, 256} {
			_, err := selectCipherPrimitive(bitLen, CBC, true)
			require.ErrorIs(t, err, ErrInvalidKeyLength)
			require.Contains(t, err.Error(), "bits")
		}
	})

	t.Run("error case - 56-bit keys rejected when weak keys are not allowed", func(t *testing.T) {
		_, err := selectCipherPrimitive(56, CBC, false)
		require.ErrorIs(t, err, ErrInvalidKeyLength)

		id, err := selectCipherPrimitive(56, CBC, true)
		require.NoError(t, err)
		require.Equal(t, primitive.DESCBC, id)
	})

	t.Run("error case - unrecognized cipher mode", func(t *testing.T) {
		_, err := selectCipherPrimitive(168, CipherMode(99), true)
		require.ErrorIs(t, err, ErrInvalidMode)
	})
}

func TestSelectWrapPrimitive(t *testing.T) {
	t.Run("success - every key length and flavor maps to a distinct primitive", func(t *testing.T) {
		seen := map[primitive.ID]struct{}{}

		for _, bitLen := range []uint{64, 128, 192} {
			for _, mode := range []WrapMode{DESKeyWrap, DESCBCKeyWrap} {
				id, err := selectWrapPrimitive(bitLen, mode)
				require.NoError(t, err)
				require.NotEmpty(t, id)

				_, dup := seen[id]
				require.False(t, dup, "duplicate primitive %s for %d/%s", id, bitLen, mode)

				seen[id] = struct{}{}
			}
		}

		require.Len(t, seen, 6)
	})

	t.Run("error case - effective key lengths are not accepted for wrapping", func(t *testing.T) {
		for _, bitLen := range []uint{56, 112, 168} {
			_, err := selectWrapPrimitive(bitLen, DESKeyWrap)
			require.ErrorIs(t, err, ErrInvalidMode)
		}
	})

	t.Run("error case - unrecognized wrap mode", func(t *testing.T) {
		_, err := selectWrapPrimitive(192, WrapMode(5))
		require.ErrorIs(t, err, ErrInvalidMode)
	})
}
