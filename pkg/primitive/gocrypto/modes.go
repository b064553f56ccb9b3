/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package gocrypto

import (
	"crypto/cipher"
	"crypto/des"
	"errors"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

// consume appends in to buf and splits the result into the aligned prefix that may be processed now and the
// remainder to keep for the next call. When holdFinal is set the last full block is kept back too, so that a
// padded decryption can strip padding at Final.
func consume(buf, in []byte, holdFinal bool) (process, rest []byte) {
	b := append(buf, in...)

	p := len(b) - len(b)%des.BlockSize
	if holdFinal && p == len(b) && p > 0 {
		p -= des.BlockSize
	}

	rest = make([]byte, len(b)-p)
	copy(rest, b[p:])

	return b[:p], rest
}

// finishBlocks completes a block mode context: padding the tail on encryption, or decrypting the withheld final
// block and stripping padding on decryption. With padding disabled any leftover input means the caller's data was
// not block aligned.
func finishBlocks(dst, buf []byte, padding bool, direction primitive.Direction,
	crypt func(dst, src []byte)) (int, error) {
	if !padding {
		if len(buf) != 0 {
			return 0, errors.New("gocrypto: data not block aligned")
		}

		return 0, nil
	}

	if direction == primitive.Encrypt {
		final := pkcs7Pad(buf, des.BlockSize)

		if len(dst) < len(final) {
			return 0, errShortOutput
		}

		crypt(dst[:len(final)], final)

		return len(final), nil
	}

	if len(buf) != des.BlockSize {
		return 0, errors.New("gocrypto: missing final block")
	}

	tmp := make([]byte, des.BlockSize)
	crypt(tmp, buf)

	unpadded, err := pkcs7Unpad(tmp, des.BlockSize)
	if err != nil {
		return 0, err
	}

	if len(dst) < len(unpadded) {
		return 0, errShortOutput
	}

	copy(dst, unpadded)

	return len(unpadded), nil
}

type ecbContext struct {
	block     cipher.Block
	direction primitive.Direction
	padding   bool
	buf       []byte
}

func (c *ecbContext) SetPadding(enabled bool) error {
	c.padding = enabled

	return nil
}

func (c *ecbContext) Update(dst, in []byte) (int, error) {
	hold := c.padding && c.direction == primitive.Decrypt

	process, rest := consume(c.buf, in, hold)
	c.buf = rest

	if len(dst) < len(process) {
		return 0, errShortOutput
	}

	c.crypt(dst[:len(process)], process)

	return len(process), nil
}

func (c *ecbContext) Final(dst []byte) (int, error) {
	return finishBlocks(dst, c.buf, c.padding, c.direction, c.crypt)
}

func (c *ecbContext) Close() {
	c.buf = nil
}

func (c *ecbContext) crypt(dst, src []byte) {
	for i := 0; i < len(src); i += des.BlockSize {
		if c.direction == primitive.Encrypt {
			c.block.Encrypt(dst[i:i+des.BlockSize], src[i:i+des.BlockSize])
		} else {
			c.block.Decrypt(dst[i:i+des.BlockSize], src[i:i+des.BlockSize])
		}
	}
}

type cbcContext struct {
	mode      cipher.BlockMode
	direction primitive.Direction
	padding   bool
	buf       []byte
}

func (c *cbcContext) SetPadding(enabled bool) error {
	c.padding = enabled

	return nil
}

func (c *cbcContext) Update(dst, in []byte) (int, error) {
	hold := c.padding && c.direction == primitive.Decrypt

	process, rest := consume(c.buf, in, hold)
	c.buf = rest

	if len(dst) < len(process) {
		return 0, errShortOutput
	}

	c.crypt(dst[:len(process)], process)

	return len(process), nil
}

func (c *cbcContext) Final(dst []byte) (int, error) {
	return finishBlocks(dst, c.buf, c.padding, c.direction, c.crypt)
}

func (c *cbcContext) Close() {
	c.buf = nil
}

func (c *cbcContext) crypt(dst, src []byte) {
	c.mode.CryptBlocks(dst, src)
}

// streamContext serves the OFB and CFB modes. Stream modes carry no padding, so SetPadding is a no-op and any
// input length is accepted.
type streamContext struct {
	stream cipher.Stream
}

func (c *streamContext) SetPadding(bool) error {
	return nil
}

func (c *streamContext) Update(dst, in []byte) (int, error) {
	if len(dst) < len(in) {
		return 0, errShortOutput
	}

	c.stream.XORKeyStream(dst[:len(in)], in)

	return len(in), nil
}

func (c *streamContext) Final([]byte) (int, error) {
	return 0, nil
}

func (c *streamContext) Close() {}
