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
	"golang.org/x/crypto/sha3"

	"github.com/lumenchain/goevm/vm"
)

// Keccak256 computes the Keccak-256 digest of data, as used by SHA3,
// EXTCODEHASH, and contract-address derivation.
func Keccak256(data []byte) vm.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out vm.Hash
	h.Sum(out[:0])
	return out
}
