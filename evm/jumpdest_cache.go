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

// jumpDestinations is a bitset of valid JUMPDEST positions for one
// contract's code, indexed by byte offset.
type jumpDestinations struct {
	bits []uint64
}

func analyzeJumpDestinations(code []byte) *jumpDestinations {
	jd := &jumpDestinations{bits: make([]uint64, (len(code)/64)+1)}
	for i := 0; i < len(code); {
		op := OpCode(code[i])
		if op == JUMPDEST {
			jd.bits[i/64] |= 1 << uint(i%64)
			i++
			continue
		}
		if op.IsPush() {
			i += 1 + op.PushSize()
			continue
		}
		i++
	}
	return jd
}

func (jd *jumpDestinations) isValid(pc uint64) bool {
	if int(pc/64) >= len(jd.bits) {
		return false
	}
	return jd.bits[pc/64]&(1<<(pc%64)) != 0
}

// jumpDestCacheSize bounds how many contracts' destination analyses are
// kept resident by default; each entry costs roughly len(code)/64 * 8
// bytes. Config.JumpdestCacheSize overrides this per Context.
const jumpDestCacheSize = 1 << 12

var jumpDestCache, _ = lru.New[string, *jumpDestinations](jumpDestCacheSize)

// lookupJumpDestinations returns the destination analysis for code from
// cache, keyed by its Keccak-256 hash so identical bytecode deployed at
// multiple addresses shares one analysis, computing and storing it on a
// miss.
func lookupJumpDestinations(cache *lru.Cache[string, *jumpDestinations], codeHash vm.Hash, code []byte) *jumpDestinations {
	key := string(codeHash[:])
	if jd, ok := cache.Get(key); ok {
		return jd
	}
	jd := analyzeJumpDestinations(code)
	cache.Add(key, jd)
	return jd
}
