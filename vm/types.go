// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package vm defines the public data types and the Host interface shared
// between an EVM interpreter and its surrounding world-state implementation.
// It defines no behavior of its own: it is the vocabulary the execution
// core and the Host communicate through.
package vm

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address represents the 160-bit (20 byte) identifier of an account.
type Address [20]byte

func (a Address) String() string { return fmt.Sprintf("0x%x", a[:]) }

func (a Address) MarshalText() ([]byte, error) { return bytesToText(a[:]) }

func (a *Address) UnmarshalText(data []byte) error { return textToBytes(a[:], data) }

// Key represents the 256-bit key of a storage slot.
type Key [32]byte

func (k Key) String() string { return fmt.Sprintf("0x%x", k[:]) }

// Word represents an arbitrary 256-bit word, big-endian on the wire.
type Word [32]byte

func (w Word) String() string { return fmt.Sprintf("0x%x", w[:]) }

// Value represents an amount of chain currency (wei), big-endian.
type Value [32]byte

func (v Value) String() string { return fmt.Sprintf("0x%x", v[:]) }

func (v Value) MarshalText() ([]byte, error) { return bytesToText(v[:]) }

func (v *Value) UnmarshalText(data []byte) error { return textToBytes(v[:], data) }

func (v Value) IsZero() bool { return v == Value{} }

// Hash represents a 256-bit Keccak-256 digest.
type Hash [32]byte

func (h Hash) String() string { return fmt.Sprintf("0x%x", h[:]) }

// Code is the immutable byte-code of a contract.
type Code []byte

// Data is the input or output byte payload of a contract invocation.
type Data []byte

// Gas is the signed 64-bit type used throughout for gas accounting. It is
// signed so that intermediate computations (e.g. subtracting a charge that
// exceeds the remaining balance) can be observed going negative before the
// caller decides how to react, without wrapping.
type Gas int64

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	decoded, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(decoded); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg, decoded)
	return nil
}

// AccessStatus indicates whether an account or storage slot access is
// cold or warm under EIP-2929.
type AccessStatus bool

const (
	ColdAccess AccessStatus = false
	WarmAccess AccessStatus = true
)

// StorageStatus classifies the effect of an SSTORE on a slot within the
// current transaction, relative to the slot's committed (original) value.
// The five-way classification below matches the EIP-2200/2929/3529 gas
// schedule used by the evm package's sstoreGasAndRefund.
type StorageStatus int

const (
	// StorageUnchanged: the new value equals the current value (no-op write).
	StorageUnchanged StorageStatus = iota
	// StorageAdded: original == current == 0, new != 0.
	StorageAdded
	// StorageDeleted: original == current != 0, new == 0.
	StorageDeleted
	// StorageModified: original == current != 0, new != 0, new != original.
	StorageModified
	// StorageModifiedAgain: current has already diverged from original in
	// this transaction (dirty slot, covers all remaining original/current/new
	// permutations: deleted-added, modified-deleted, deleted-restored,
	// added-deleted, modified-restored).
	StorageModifiedAgain
)

func (s StorageStatus) String() string {
	switch s {
	case StorageUnchanged:
		return "Unchanged"
	case StorageAdded:
		return "Added"
	case StorageDeleted:
		return "Deleted"
	case StorageModified:
		return "Modified"
	case StorageModifiedAgain:
		return "ModifiedAgain"
	default:
		return fmt.Sprintf("StorageStatus(%d)", int(s))
	}
}

// GetStorageStatus classifies an SSTORE transition given the slot's
// committed (original), pre-write (current), and to-be-written (new)
// values. See https://eips.ethereum.org/EIPS/eip-2200 for the definitions.
func GetStorageStatus(original, current, new Word) StorageStatus {
	if current == new {
		return StorageUnchanged
	}
	var zero Word
	if original == current {
		if original == zero {
			return StorageAdded
		}
		if new == zero {
			return StorageDeleted
		}
		return StorageModified
	}
	return StorageModifiedAgain
}

// CallKind enumerates the flavors of recursive contract invocation an
// opcode can trigger.
type CallKind int

const (
	Call CallKind = iota
	CallCode
	DelegateCall
	StaticCall
	Create
	Create2
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case CallCode:
		return "call_code"
	case DelegateCall:
		return "delegate_call"
	case StaticCall:
		return "static_call"
	case Create:
		return "create"
	case Create2:
		return "create2"
	default:
		return "unknown"
	}
}

// Log is a single event emitted by the LOGn family.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}
