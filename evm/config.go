// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evm

import "io"

// Config carries the execution core's optional feature toggles: whether
// to memoize Keccak-256 over common SHA3 input sizes, how large a
// per-code-hash JUMPDEST analysis cache to keep, and where to send a
// per-instruction trace. It is passed explicitly into RunWithConfig, on
// the teacher's pattern of an explicit config struct rather than package-
// level mutable state; the zero Config is the default, fully-enabled
// configuration.
type Config struct {
	// DisableKeccakCache bypasses the 32/64-byte Keccak-256 memoization
	// cache (hash_cache.go) and hashes every SHA3 call directly.
	DisableKeccakCache bool

	// JumpdestCacheSize overrides the capacity of the per-code-hash
	// valid-JUMPDEST analysis cache (jumpdest_cache.go). Zero keeps the
	// package's built-in default capacity; a negative value disables the
	// cache entirely, re-scanning the code for JUMPDEST positions on
	// every frame.
	JumpdestCacheSize int

	// Logger, if non-nil, receives one line per executed instruction,
	// as if an InstructionLogger had been attached as a Tracer.
	Logger io.Writer
}
