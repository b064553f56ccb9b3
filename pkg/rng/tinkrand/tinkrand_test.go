/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package tinkrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		source := New()

		first, err := source.GenerateRandom(32)
		require.NoError(t, err)
		require.Equal(t, 32, len(first))

		second, err := source.GenerateRandom(32)
		require.NoError(t, err)
		require.NotEqual(t, first, second)
	})

	t.Run("success - zero bytes", func(t *testing.T) {
		out, err := New().GenerateRandom(0)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("error case - negative count", func(t *testing.T) {
		_, err := New().GenerateRandom(-1)
		require.Error(t, err)
	})
}
