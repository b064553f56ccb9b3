/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package primitive provides mock cipher primitive provider implementations for testing engine failure paths.
package primitive

import (
	spiprimitive "github.com/cipherfoundry/desengine/spi/primitive"
)

// Provider mocks a cipher primitive provider.
type Provider struct {
	ResolveValue spiprimitive.Handle
	ResolveErr   error
	ResolvedIDs  []spiprimitive.ID
}

// Resolve records id and returns the mocked handle or error.
func (p *Provider) Resolve(id spiprimitive.ID) (spiprimitive.Handle, error) {
	p.ResolvedIDs = append(p.ResolvedIDs, id)

	if p.ResolveErr != nil {
		return nil, p.ResolveErr
	}

	return p.ResolveValue, nil
}

// Handle mocks a resolved primitive handle.
type Handle struct {
	IDValue         spiprimitive.ID
	BlockSizeValue  int
	NewContextValue spiprimitive.Context
	NewContextErr   error
}

// ID returns the mocked primitive identifier.
func (h *Handle) ID() spiprimitive.ID {
	return h.IDValue
}

// BlockSize returns the mocked block size.
func (h *Handle) BlockSize() int {
	return h.BlockSizeValue
}

// NewContext returns the mocked context or error.
func (h *Handle) NewContext(key, iv []byte, direction spiprimitive.Direction) (spiprimitive.Context, error) {
	if h.NewContextErr != nil {
		return nil, h.NewContextErr
	}

	return h.NewContextValue, nil
}

// Context mocks a cipher context.
type Context struct {
	SetPaddingErr  error
	PaddingEnabled bool
	UpdateN        int
	UpdateErr      error
	FinalN         int
	FinalErr       error
	Closed         bool
}

// SetPadding records the requested padding state and returns the mocked error.
func (c *Context) SetPadding(enabled bool) error {
	c.PaddingEnabled = enabled

	return c.SetPaddingErr
}

// Update returns the mocked produced byte count or error.
func (c *Context) Update(dst, in []byte) (int, error) {
	if c.UpdateErr != nil {
		return 0, c.UpdateErr
	}

	return c.UpdateN, nil
}

// Final returns the mocked produced byte count or error.
func (c *Context) Final(dst []byte) (int, error) {
	if c.FinalErr != nil {
		return 0, c.FinalErr
	}

	return c.FinalN, nil
}

// Close marks the context closed.
func (c *Context) Close() {
	c.Closed = true
}
