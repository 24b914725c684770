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

//go:generate mockgen -source host.go -destination host_mock.go -package vm

// Host is the external world-state collaborator the execution core
// delegates all consensus-state effects to: account and storage access,
// balance/code/hash queries, block and transaction context, log emission,
// recursive sub-calls, and self-destruct. The core never mutates
// consensus state directly; every opcode that would do so goes through
// one of these methods.
type Host interface {
	// AccountExists reports whether addr has a non-empty account record.
	AccountExists(addr Address) bool

	// GetBalance returns the current balance of addr.
	GetBalance(addr Address) Value

	// GetCodeSize returns the length of the code deployed at addr.
	GetCodeSize(addr Address) int

	// GetCodeHash returns the Keccak-256 hash of the code deployed at addr.
	GetCodeHash(addr Address) Hash

	// GetCode returns the code deployed at addr.
	GetCode(addr Address) Code

	// GetStorage returns the current value of the given storage slot.
	GetStorage(addr Address, key Key) Word

	// SetStorage writes value into the given storage slot and returns the
	// slot's transition status. The SSTORE handler derives its gas/refund
	// from GetStorage and GetCommittedStorage and ignores this result.
	SetStorage(addr Address, key Key, value Word) StorageStatus

	// GetCommittedStorage returns the value the given slot held at the
	// start of the current transaction (i.e. ignoring writes the ongoing
	// transaction has made).
	GetCommittedStorage(addr Address, key Key) Word

	// GetTransientStorage / SetTransientStorage implement EIP-1153
	// transient storage, which is scoped to the transaction and never
	// persisted.
	GetTransientStorage(addr Address, key Key) Word
	SetTransientStorage(addr Address, key Key, value Word)

	// AccessAccount and AccessStorage implement EIP-2929 access-list
	// warming: the first access within a transaction is Cold, all
	// subsequent accesses are Warm. Calling these methods marks the
	// target warm as a side effect, regardless of the returned status.
	AccessAccount(addr Address) AccessStatus
	AccessStorage(addr Address, key Key) AccessStatus

	// GetBlockHash returns the hash of the block with the given number,
	// or the zero hash if number is not one of the 256 most recent blocks.
	GetBlockHash(number int64) Hash

	// EmitLog records a LOGn event.
	EmitLog(log Log)

	// SelfDestruct registers addr for destruction at the end of the
	// transaction, transferring its balance to beneficiary. It returns
	// true if this is the first time addr has self-destructed in the
	// current transaction.
	SelfDestruct(addr, beneficiary Address) bool

	// Call dispatches a recursive CALL/CALLCODE/DELEGATECALL/STATICCALL
	// or a CREATE/CREATE2, executing the callee (by re-entering an
	// interpreter with a fresh Frame) and returning its result.
	Call(kind CallKind, parameters CallParameters) (CallResult, error)

	// GetTransactionContext returns the read-only block/transaction
	// environment shared by all frames of the current transaction.
	GetTransactionContext() TransactionContext
}

// TransactionContext bundles the read-only block and transaction fields
// every environmental opcode (COINBASE, TIMESTAMP, GASPRICE, ...) reads.
type TransactionContext struct {
	ChainID     Word
	BlockNumber int64
	Timestamp   int64
	Coinbase    Address
	GasLimit    Gas
	PrevRandao  Hash
	BaseFee     Value
	BlobBaseFee Value
	Revision    Revision

	Origin     Address
	GasPrice   Value
	BlobHashes []Hash
}

// CallParameters describes a recursive invocation requested by CALL family
// or CREATE family opcode.
type CallParameters struct {
	Sender      Address
	Recipient   Address // ignored for Create/Create2
	Value       Value   // ignored by static calls, treated as 0
	Input       Data
	Gas         Gas
	Salt        Hash // only meaningful for Create2
	CodeAddress Address
}

// CallResult is what a Host.Call invocation reports back to the opcode
// handler that triggered it.
type CallResult struct {
	Output         Data
	GasLeft        Gas
	GasRefund      Gas
	CreatedAddress Address // only meaningful for Create/Create2
	Success        bool
}

// Parameters summarizes the complete input to a single frame execution.
type Parameters struct {
	Context   Host
	Code      Code
	CodeHash  *Hash
	Kind      CallKind
	Static    bool
	Depth     int
	Gas       Gas
	Recipient Address
	Sender    Address
	Input     Data
	Value     Value
}

// Result summarizes the outcome of a single frame execution.
type Result struct {
	Success   bool
	Output    Data
	GasLeft   Gas
	GasRefund Gas
}
