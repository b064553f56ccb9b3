/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

// Package gocrypto provides a cipher primitive provider backed by the Go standard crypto library. It implements
// single, double and triple length DES in ECB, CBC, OFB and CFB modes, plus the plain and CBC key wrap
// constructions consumed by the DES engine.
package gocrypto

import (
	"crypto/cipher"
	"crypto/des"
	"errors"
	"fmt"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

var errShortOutput = errors.New("gocrypto: output buffer too small")

type kind int

const (
	kindECB kind = iota
	kindCBC
	kindOFB
	kindCFB
	kindKW
	kindCBCKW
)

type spec struct {
	keySize int
	kind    kind
}

var primitives = map[primitive.ID]spec{
	primitive.DESCBC:       {keySize: 8, kind: kindCBC},
	primitive.DESEDECBC:    {keySize: 16, kind: kindCBC},
	primitive.DESEDE3CBC:   {keySize: 24, kind: kindCBC},
	primitive.DESECB:       {keySize: 8, kind: kindECB},
	primitive.DESEDEECB:    {keySize: 16, kind: kindECB},
	primitive.DESEDE3ECB:   {keySize: 24, kind: kindECB},
	primitive.DESOFB:       {keySize: 8, kind: kindOFB},
	primitive.DESEDEOFB:    {keySize: 16, kind: kindOFB},
	primitive.DESEDE3OFB:   {keySize: 24, kind: kindOFB},
	primitive.DESCFB:       {keySize: 8, kind: kindCFB},
	primitive.DESEDECFB:    {keySize: 16, kind: kindCFB},
	primitive.DESEDE3CFB:   {keySize: 24, kind: kindCFB},
	primitive.DESKW:        {keySize: 8, kind: kindKW},
	primitive.DESEDEKW:     {keySize: 16, kind: kindKW},
	primitive.DESEDE3KW:    {keySize: 24, kind: kindKW},
	primitive.DESCBCKW:     {keySize: 8, kind: kindCBCKW},
	primitive.DESEDECBCKW:  {keySize: 16, kind: kindCBCKW},
	primitive.DESEDE3CBCKW: {keySize: 24, kind: kindCBCKW},
}

// Provider resolves DES primitives implemented with crypto/des and crypto/cipher.
type Provider struct{}

// New returns a software DES primitive provider.
func New() *Provider {
	return &Provider{}
}

// Resolve returns a handle for the primitive identified by id.
func (p *Provider) Resolve(id primitive.ID) (primitive.Handle, error) {
	s, ok := primitives[id]
	if !ok {
		return nil, fmt.Errorf("gocrypto: unknown primitive %s", id)
	}

	return &handle{id: id, spec: s}, nil
}

type handle struct {
	id   primitive.ID
	spec spec
}

func (h *handle) ID() primitive.ID {
	return h.id
}

func (h *handle) BlockSize() int {
	return des.BlockSize
}

func (h *handle) NewContext(key, iv []byte, direction primitive.Direction) (primitive.Context, error) {
	block, err := h.newBlock(key)
	if err != nil {
		return nil, err
	}

	ivb := make([]byte, des.BlockSize)

	if iv != nil {
		if len(iv) != des.BlockSize {
			return nil, fmt.Errorf("gocrypto: invalid IV size %d for %s", len(iv), h.id)
		}

		copy(ivb, iv)
	}

	switch h.spec.kind {
	case kindECB:
		return &ecbContext{block: block, direction: direction, padding: true}, nil
	case kindCBC:
		var mode cipher.BlockMode
		if direction == primitive.Encrypt {
			mode = cipher.NewCBCEncrypter(block, ivb)
		} else {
			mode = cipher.NewCBCDecrypter(block, ivb)
		}

		return &cbcContext{mode: mode, direction: direction, padding: true}, nil
	case kindOFB:
		return &streamContext{stream: cipher.NewOFB(block, ivb)}, nil
	case kindCFB:
		var stream cipher.Stream
		if direction == primitive.Encrypt {
			stream = cipher.NewCFBEncrypter(block, ivb)
		} else {
			stream = cipher.NewCFBDecrypter(block, ivb)
		}

		return &streamContext{stream: stream}, nil
	case kindKW:
		return &wrapContext{block: block, direction: direction, padding: true}, nil
	case kindCBCKW:
		return &wrapContext{block: block, cbc: true, direction: direction, padding: true}, nil
	}

	return nil, fmt.Errorf("gocrypto: unknown primitive kind for %s", h.id)
}

func (h *handle) newBlock(key []byte) (cipher.Block, error) {
	if len(key) != h.spec.keySize {
		return nil, fmt.Errorf("gocrypto: invalid key size %d for %s, want %d", len(key), h.id, h.spec.keySize)
	}

	switch h.spec.keySize {
	case 8:
		return des.NewCipher(key)
	case 16:
		// Two key 3DES runs the EDE sequence as K1, K2, K1.
		k3 := make([]byte, 0, 24)
		k3 = append(k3, key...)
		k3 = append(k3, key[:8]...)

		return des.NewTripleDESCipher(k3)
	default:
		return des.NewTripleDESCipher(key)
	}
}
