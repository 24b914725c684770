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

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lumenchain/goevm/vm"
)

// sha3HashCache memoizes Keccak-256 over the two input sizes SHA3 is
// overwhelmingly called with in practice: 32-byte words (hashing a
// single mapping key) and 64-byte pairs (hashing two concatenated
// words, as in Solidity's default storage-slot derivation). Any other
// input size is hashed directly, uncached.
type sha3HashCache struct {
	cache32 *lru.Cache[[32]byte, vm.Hash]
	cache64 *lru.Cache[[64]byte, vm.Hash]
}

func newSha3HashCache(capacity32, capacity64 int) *sha3HashCache {
	c32, _ := lru.New[[32]byte, vm.Hash](capacity32)
	c64, _ := lru.New[[64]byte, vm.Hash](capacity64)
	return &sha3HashCache{cache32: c32, cache64: c64}
}

func (h *sha3HashCache) hash(data []byte) vm.Hash {
	switch len(data) {
	case 32:
		var key [32]byte
		copy(key[:], data)
		if v, ok := h.cache32.Get(key); ok {
			return v
		}
		v := Keccak256(data)
		h.cache32.Add(key, v)
		return v
	case 64:
		var key [64]byte
		copy(key[:], data)
		if v, ok := h.cache64.Get(key); ok {
			return v
		}
		v := Keccak256(data)
		h.cache64.Add(key, v)
		return v
	default:
		return Keccak256(data)
	}
}

// Evaluations on real contract workloads show the vast majority of SHA3
// calls are over 32- or 64-byte inputs, so a modest cache captures most
// of the benefit without pinning a large working set in memory.
var sha3Cache = newSha3HashCache(1<<14, 1<<14)
