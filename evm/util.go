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
	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

// checkUint64Overflow reports whether v cannot be represented as a
// uint64, which for memory offsets and sizes always indicates an
// unaffordable (and thus out-of-gas) request rather than a legitimate
// large value.
func checkUint64Overflow(v *uint256.Int) bool {
	return !v.IsUint64()
}

// checkSizeOffsetOverflow reports whether offset+size either overflows a
// uint64 or either operand does not fit in one to begin with.
func checkSizeOffsetOverflow(offset, size *uint256.Int) bool {
	if size.IsZero() {
		return false
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return true
	}
	sum := offset.Uint64() + size.Uint64()
	return sum < offset.Uint64()
}

// toAddress truncates a 256-bit stack word to the low 160 bits used as
// an account address, matching EVM semantics for ADDRESS-typed operands.
func toAddress(v *uint256.Int) vm.Address {
	b := v.Bytes20()
	return vm.Address(b)
}

// chargeAccessSurcharge applies the EIP-2929 access cost for addr (a
// no-op before Berlin, where the static per-opcode table already carries
// the full cost) and marks addr warm as a side effect through the Host.
func chargeAccessSurcharge(f *Frame, addr vm.Address) error {
	rev := f.revision()
	if rev < vm.Berlin {
		return nil
	}
	warm := f.host.AccessAccount(addr) == vm.WarmAccess
	if !f.useGas(accessListSurcharge(rev, warm)) {
		return ErrOutOfGas
	}
	return nil
}

// copyToMemory implements the common *COPY opcode shape: charge the
// per-word copy surcharge, expand memory for the destination range, then
// copy size bytes from src starting at offset (zero-padding past src's
// end) into memory at destOffset.
func copyToMemory(f *Frame, destOffset, offset, size *uint256.Int, src []byte) error {
	if checkSizeOffsetOverflow(destOffset, size) || checkSizeOffsetOverflow(offset, size) {
		return ErrGasUintOverflow
	}
	n := size.Uint64()
	if n == 0 {
		return nil
	}
	if !f.useGas(gasCopyWords(n)) {
		return ErrOutOfGas
	}
	data := make([]byte, n)
	off := offset.Uint64()
	if off < uint64(len(src)) {
		copy(data, src[off:])
	}
	return f.memory.set(destOffset.Uint64(), n, data, f)
}
