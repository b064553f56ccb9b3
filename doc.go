/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package desengine is a DES/3DES symmetric cipher engine. It resolves
// (key, mode) pairs to concrete cipher primitives, wraps and unwraps key
// material, and generates DES-family keys with correct parity bits.
//
// Packages for end developer usage:
//
// pkg/des: The engine itself. Primitive selection and validation, key
// wrap/unwrap orchestration, one-shot encrypt/decrypt and key generation.
//
// pkg/primitive/gocrypto: A primitive provider backed by the Go standard
// crypto library, covering single, double and triple length DES in ECB,
// CBC, OFB and CFB modes plus the two DES key wrap constructions.
//
// pkg/rng/tinkrand: The default random source, backed by Tink.
//
// spi/primitive, spi/rng: Capability interfaces implemented by primitive
// providers and random sources.
package desengine
