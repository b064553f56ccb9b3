/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package gocrypto

import (
	"crypto/cipher"
	"crypto/des"
	"crypto/subtle"
	"errors"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

// integrityHeader is the 8 byte check value prepended to key data before wrapping. It is the RFC 3394 ICV
// constant, reused here for the DES block size.
var integrityHeader = []byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

// wrapContext implements the plain (ECB derived) and CBC key wrap constructions. Wrapping prepends the integrity
// header to the key data and encrypts the whole sequence in the base mode with a zero IV; unwrapping decrypts and
// verifies the header before stripping it. Output is therefore always input plus one block.
//
// Input is buffered in Update and processed at Final. The construction manages its own expansion, so the caller
// must disable padding before finalizing.
type wrapContext struct {
	block     cipher.Block
	cbc       bool
	direction primitive.Direction
	padding   bool
	buf       []byte
}

func (c *wrapContext) SetPadding(enabled bool) error {
	c.padding = enabled

	return nil
}

func (c *wrapContext) Update(_, in []byte) (int, error) {
	c.buf = append(c.buf, in...)

	return 0, nil
}

func (c *wrapContext) Final(dst []byte) (int, error) {
	if c.padding {
		return 0, errors.New("gocrypto: wrap constructions require padding to be disabled")
	}

	if len(c.buf)%des.BlockSize != 0 {
		return 0, errors.New("gocrypto: wrap data not block aligned")
	}

	if c.direction == primitive.Encrypt {
		return c.wrap(dst)
	}

	return c.unwrap(dst)
}

func (c *wrapContext) Close() {
	for i := range c.buf {
		c.buf[i] = 0
	}

	c.buf = nil
}

func (c *wrapContext) wrap(dst []byte) (int, error) {
	if len(c.buf) == 0 {
		return 0, errors.New("gocrypto: no key data to wrap")
	}

	out := make([]byte, des.BlockSize+len(c.buf))
	copy(out, integrityHeader)
	copy(out[des.BlockSize:], c.buf)

	c.crypt(out)

	if len(dst) < len(out) {
		return 0, errShortOutput
	}

	copy(dst, out)

	return len(out), nil
}

func (c *wrapContext) unwrap(dst []byte) (int, error) {
	if len(c.buf) < 2*des.BlockSize {
		return 0, errors.New("gocrypto: wrapped data too short")
	}

	out := make([]byte, len(c.buf))
	copy(out, c.buf)

	c.crypt(out)

	if subtle.ConstantTimeCompare(out[:des.BlockSize], integrityHeader) != 1 {
		return 0, errors.New("gocrypto: integrity check failed")
	}

	if len(dst) < len(out)-des.BlockSize {
		return 0, errShortOutput
	}

	copy(dst, out[des.BlockSize:])

	return len(out) - des.BlockSize, nil
}

func (c *wrapContext) crypt(data []byte) {
	if c.cbc {
		iv := make([]byte, des.BlockSize)

		var mode cipher.BlockMode
		if c.direction == primitive.Encrypt {
			mode = cipher.NewCBCEncrypter(c.block, iv)
		} else {
			mode = cipher.NewCBCDecrypter(c.block, iv)
		}

		mode.CryptBlocks(data, data)

		return
	}

	for i := 0; i < len(data); i += des.BlockSize {
		if c.direction == primitive.Encrypt {
			c.block.Encrypt(data[i:i+des.BlockSize], data[i:i+des.BlockSize])
		} else {
			c.block.Decrypt(data[i:i+des.BlockSize], data[i:i+des.BlockSize])
		}
	}
}
