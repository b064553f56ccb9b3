/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOddParityTable(t *testing.T) {
	t.Run("success - every entry has odd parity", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			require.Equal(t, 1, bits.OnesCount8(oddParity[i])%2, "entry %d", i)
		}
	})

	t.Run("success - entries only differ from their index in the parity bit", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			require.Equal(t, byte(i)&0xFE, oddParity[i]&0xFE, "entry %d", i)
		}
	})

	t.Run("success - entries with odd parity map to themselves", func(t *testing.T) {
		for i := 0; i < 256; i++ {
			if bits.OnesCount8(byte(i))%2 == 1 {
				require.Equal(t, byte(i), oddParity[i], "entry %d", i)
			}
		}
	})
}
