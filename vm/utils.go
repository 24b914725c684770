// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vm

import "math"

// SizeInWords returns ceil(size/32), saturating rather than overflowing
// when size is within 31 of the uint64 maximum.
func SizeInWords(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}

// IsPrecompiledContract reports whether recipient falls in the reserved
// precompile address range [0x1, 0x9]. The core does not implement any
// precompiles; this helper only lets callers recognize the range so they
// can decide not to treat such an address as an ordinary contract.
func IsPrecompiledContract(recipient Address) bool {
	for i := 0; i < 19; i++ {
		if recipient[i] != 0 {
			return false
		}
	}
	return recipient[19] >= 1 && recipient[19] <= 9
}
