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
	"math"

	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/vm"
)

// maxMemoryExpansionSize bounds how far memory may grow; beyond this the
// quadratic expansion cost formula would overflow a signed 64-bit gas
// value. Mirrors the limit used by mainstream EVM implementations for
// 'core/vm/gas_table.go'-style memory cost computation.
const maxMemoryExpansionSize = 0x1FFFFFFFE0

// memory is the linear, byte-addressable working memory of a frame. It
// grows lazily, in whole 32-byte words, and every expansion is charged
// through expansionCost's quadratic cost formula before the underlying
// slice is grown.
type memory struct {
	store       []byte
	currentCost vm.Gas
}

func newMemory() *memory { return &memory{} }

func (m *memory) length() uint64 { return uint64(len(m.store)) }

func toValidMemorySize(size uint64) uint64 {
	words := vm.SizeInWords(size)
	full := words * 32
	if size != 0 && full < size {
		return math.MaxUint64
	}
	return full
}

// expansionCost returns the additional gas required to grow memory to
// cover size bytes, given its current length. It does not mutate m.
func (m *memory) expansionCost(size uint64) vm.Gas {
	if m.length() >= size {
		return 0
	}
	size = toValidMemorySize(size)
	if size > maxMemoryExpansionSize {
		return vm.Gas(math.MaxInt64)
	}
	words := vm.SizeInWords(size)
	newCost := vm.Gas(words*words/512 + 3*words)
	return newCost - m.currentCost
}

// expand grows memory to cover [offset, offset+size), charging frame f
// for the expansion. It is a no-op if size is 0 or memory already covers
// the range.
func (m *memory) expand(offset, size uint64, f *Frame) error {
	if size == 0 {
		return nil
	}
	needed := offset + size
	if needed < offset {
		return ErrGasUintOverflow
	}
	if m.length() >= needed {
		return nil
	}
	fee := m.expansionCost(needed)
	if !f.useGas(fee) {
		return ErrOutOfGas
	}
	m.growWithoutCharging(needed)
	return nil
}

func (m *memory) growWithoutCharging(needed uint64) {
	needed = toValidMemorySize(needed)
	if m.length() < needed {
		m.currentCost += m.expansionCost(needed)
		m.store = append(m.store, make([]byte, needed-m.length())...)
	}
}

// setByte writes a single byte at offset, expanding and charging as needed.
func (m *memory) setByte(offset uint64, value byte, f *Frame) error {
	if err := m.expand(offset, 1, f); err != nil {
		return err
	}
	m.store[offset] = value
	return nil
}

// setWord writes a 32-byte big-endian word at offset.
func (m *memory) setWord(offset uint64, value *uint256.Int, f *Frame) error {
	if err := m.expand(offset, 32, f); err != nil {
		return err
	}
	b := value.Bytes32()
	copy(m.store[offset:offset+32], b[:])
	return nil
}

// set copies value into memory at [offset, offset+size), expanding and
// charging as needed.
func (m *memory) set(offset, size uint64, value []byte, f *Frame) error {
	if err := m.expand(offset, size, f); err != nil {
		return err
	}
	if size > 0 {
		copy(m.store[offset:offset+size], value)
	}
	return nil
}

// getSlice returns a slice of size bytes at offset, backed directly by
// memory's storage. Any later memory-growing operation invalidates it.
func (m *memory) getSlice(offset, size uint64, f *Frame) ([]byte, error) {
	if err := m.expand(offset, size, f); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return m.store[offset : offset+size], nil
}

// readWord reads 32 bytes at offset into target, zero-padding implicitly
// through the expansion it triggers.
func (m *memory) readWord(offset uint64, target *uint256.Int, f *Frame) error {
	data, err := m.getSlice(offset, 32, f)
	if err != nil {
		return err
	}
	target.SetBytes32(data)
	return nil
}

// copyOut copies from memory starting at offset into target, padding
// with zeros past the end of memory, without expanding or charging gas.
// Used by the CALL family to copy call input from memory that has already
// been expanded to cover it.
func (m *memory) copyOut(offset uint64, target []byte) {
	if m.length() <= offset {
		for i := range target {
			target[i] = 0
		}
		return
	}
	covered := copy(target, m.store[offset:])
	for i := covered; i < len(target); i++ {
		target[i] = 0
	}
}
