// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package memhost provides a minimal, entirely in-memory implementation of
// vm.Host, suitable for examples, manual experiments and package tests
// that need a real (not mocked) world-state collaborator without pulling
// in a full state-database stack.
package memhost

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/lumenchain/goevm/evm"
	"github.com/lumenchain/goevm/vm"
)

// maxCallDepth matches the mainnet recursion limit enforced by real Hosts;
// memhost enforces it too so depth-limit behavior is exercisable without a
// production state database.
const maxCallDepth = 1024

// account holds the mutable per-address state memhost tracks.
type account struct {
	balance  vm.Value
	nonce    uint64
	code     vm.Code
	codeHash vm.Hash
	storage  map[vm.Key]vm.Word

	committed map[vm.Key]vm.Word // storage values as of the last Commit
	destructed bool
}

func newAccount() *account {
	return &account{storage: map[vm.Key]vm.Word{}, committed: map[vm.Key]vm.Word{}}
}

// Host is a stateful, non-persistent vm.Host. It is safe for use by a
// single execution at a time; it makes no attempt at concurrency control.
type Host struct {
	txContext vm.TransactionContext
	accounts  map[vm.Address]*account
	transient map[vm.Address]map[vm.Key]vm.Word

	warmAccounts map[vm.Address]bool
	warmSlots    map[vm.Address]map[vm.Key]bool

	logs  []vm.Log
	depth int

	blockHashes map[int64]vm.Hash
}

// New creates an empty Host for the given block/transaction environment.
func New(txContext vm.TransactionContext) *Host {
	return &Host{
		txContext:    txContext,
		accounts:     map[vm.Address]*account{},
		transient:    map[vm.Address]map[vm.Key]vm.Word{},
		warmAccounts: map[vm.Address]bool{},
		warmSlots:    map[vm.Address]map[vm.Key]bool{},
		blockHashes:  map[int64]vm.Hash{},
	}
}

func (h *Host) account(addr vm.Address) *account {
	a, ok := h.accounts[addr]
	if !ok {
		a = newAccount()
		h.accounts[addr] = a
	}
	return a
}

// SetBalance sets addr's balance, creating the account if needed.
func (h *Host) SetBalance(addr vm.Address, value vm.Value) {
	h.account(addr).balance = value
}

// SetCode installs code (and its Keccak-256 hash) as addr's contract code.
func (h *Host) SetCode(addr vm.Address, code vm.Code) {
	a := h.account(addr)
	a.code = code
	a.codeHash = evm.Keccak256(code)
}

// SetStorageDirect sets a slot's value without going through SetStorage's
// status bookkeeping, intended for seeding state before a run begins.
func (h *Host) SetStorageDirect(addr vm.Address, key vm.Key, value vm.Word) {
	a := h.account(addr)
	a.storage[key] = value
	a.committed[key] = value
}

// SetBlockHash registers the hash associated with a historical block number.
func (h *Host) SetBlockHash(number int64, hash vm.Hash) {
	h.blockHashes[number] = hash
}

// Commit snapshots the current storage of every account as "committed",
// as if a transaction boundary had passed. Dirty-slot gas accounting
// (GetCommittedStorage) is relative to the most recent Commit.
func (h *Host) Commit() {
	for _, a := range h.accounts {
		for k, v := range a.storage {
			a.committed[k] = v
		}
	}
	h.transient = map[vm.Address]map[vm.Key]vm.Word{}
	h.warmAccounts = map[vm.Address]bool{}
	h.warmSlots = map[vm.Address]map[vm.Key]bool{}
}

// Logs returns every log emitted since construction. Commit does not clear
// them, since they belong to the transaction that produced them, not to
// account state.
func (h *Host) Logs() []vm.Log { return h.logs }

func (h *Host) AccountExists(addr vm.Address) bool {
	a, ok := h.accounts[addr]
	if !ok {
		return false
	}
	return !a.balance.IsZero() || len(a.code) > 0 || a.nonce > 0
}

func (h *Host) GetBalance(addr vm.Address) vm.Value {
	return h.account(addr).balance
}

func (h *Host) GetCodeSize(addr vm.Address) int {
	return len(h.account(addr).code)
}

func (h *Host) GetCodeHash(addr vm.Address) vm.Hash {
	return h.account(addr).codeHash
}

func (h *Host) GetCode(addr vm.Address) vm.Code {
	return h.account(addr).code
}

func (h *Host) GetStorage(addr vm.Address, key vm.Key) vm.Word {
	return h.account(addr).storage[key]
}

func (h *Host) SetStorage(addr vm.Address, key vm.Key, value vm.Word) vm.StorageStatus {
	a := h.account(addr)
	original := a.committed[key]
	current := a.storage[key]
	status := vm.GetStorageStatus(original, current, value)
	a.storage[key] = value
	return status
}

func (h *Host) GetCommittedStorage(addr vm.Address, key vm.Key) vm.Word {
	return h.account(addr).committed[key]
}

func (h *Host) GetTransientStorage(addr vm.Address, key vm.Key) vm.Word {
	return h.transient[addr][key]
}

func (h *Host) SetTransientStorage(addr vm.Address, key vm.Key, value vm.Word) {
	m, ok := h.transient[addr]
	if !ok {
		m = map[vm.Key]vm.Word{}
		h.transient[addr] = m
	}
	m[key] = value
}

func (h *Host) AccessAccount(addr vm.Address) vm.AccessStatus {
	if h.warmAccounts[addr] {
		return vm.WarmAccess
	}
	h.warmAccounts[addr] = true
	return vm.ColdAccess
}

func (h *Host) AccessStorage(addr vm.Address, key vm.Key) vm.AccessStatus {
	m, ok := h.warmSlots[addr]
	if !ok {
		m = map[vm.Key]bool{}
		h.warmSlots[addr] = m
	}
	if m[key] {
		return vm.WarmAccess
	}
	m[key] = true
	return vm.ColdAccess
}

func (h *Host) GetBlockHash(number int64) vm.Hash {
	return h.blockHashes[number]
}

func (h *Host) EmitLog(log vm.Log) {
	h.logs = append(h.logs, log)
}

func (h *Host) SelfDestruct(addr, beneficiary vm.Address) bool {
	a := h.account(addr)
	first := !a.destructed
	a.destructed = true

	transferBalance(h, addr, beneficiary)
	return first
}

func (h *Host) GetTransactionContext() vm.TransactionContext {
	return h.txContext
}

// Call dispatches a recursive CALL/CALLCODE/DELEGATECALL/STATICCALL or a
// CREATE/CREATE2 by constructing a fresh frame and re-entering evm.Run.
func (h *Host) Call(kind vm.CallKind, p vm.CallParameters) (vm.CallResult, error) {
	if h.depth >= maxCallDepth {
		// Depth-exceeded is a light failure: the earmarked gas comes back
		// to the caller untouched, same as any other call that fails
		// before the callee ever runs.
		return vm.CallResult{Success: false, GasLeft: p.Gas}, nil
	}

	if kind == vm.Create || kind == vm.Create2 {
		return h.create(kind, p)
	}

	target := p.CodeAddress
	code := h.account(target).code
	codeHash := h.account(target).codeHash

	if !p.Value.IsZero() {
		if !h.moveBalance(p.Sender, p.Recipient, p.Value) {
			return vm.CallResult{Success: false}, nil
		}
	}

	h.depth++
	result, err := evm.Run(vm.Parameters{
		Context:   h,
		Code:      code,
		CodeHash:  &codeHash,
		Kind:      kind,
		Static:    kind == vm.StaticCall,
		Depth:     h.depth,
		Gas:       p.Gas,
		Recipient: p.Recipient,
		Sender:    p.Sender,
		Input:     p.Input,
		Value:     p.Value,
	})
	h.depth--
	if err != nil {
		return vm.CallResult{}, err
	}

	return vm.CallResult{
		Output:    result.Output,
		GasLeft:   result.GasLeft,
		GasRefund: result.GasRefund,
		Success:   result.Success,
	}, nil
}

// create implements CREATE/CREATE2 address derivation and initcode
// execution. Address derivation is a simplified keccak(sender||nonce)
// scheme rather than mainnet's RLP encoding, documented as a deliberate
// simplification for this in-memory reference Host.
func (h *Host) create(kind vm.CallKind, p vm.CallParameters) (vm.CallResult, error) {
	sender := h.account(p.Sender)
	nonce := sender.nonce
	sender.nonce++

	var addr vm.Address
	if kind == vm.Create2 {
		initHash := evm.Keccak256(p.Input)
		buf := make([]byte, 0, 1+20+32+32)
		buf = append(buf, 0xff)
		buf = append(buf, p.Sender[:]...)
		buf = append(buf, p.Salt[:]...)
		buf = append(buf, initHash[:]...)
		digest := evm.Keccak256(buf)
		copy(addr[:], digest[12:])
	} else {
		buf := make([]byte, 20+8)
		copy(buf, p.Sender[:])
		binary.BigEndian.PutUint64(buf[20:], nonce)
		digest := evm.Keccak256(buf)
		copy(addr[:], digest[12:])
	}

	if !p.Value.IsZero() {
		if !h.moveBalance(p.Sender, addr, p.Value) {
			return vm.CallResult{Success: false}, nil
		}
	}

	h.depth++
	result, err := evm.Run(vm.Parameters{
		Context:   h,
		Code:      vm.Code(p.Input),
		Kind:      kind,
		Depth:     h.depth,
		Gas:       p.Gas,
		Recipient: addr,
		Sender:    p.Sender,
		Value:     p.Value,
	})
	h.depth--
	if err != nil {
		return vm.CallResult{}, err
	}
	if !result.Success {
		return vm.CallResult{Output: result.Output, GasLeft: result.GasLeft, Success: false}, nil
	}

	h.SetCode(addr, vm.Code(result.Output))
	return vm.CallResult{
		GasLeft:        result.GasLeft,
		GasRefund:      result.GasRefund,
		CreatedAddress: addr,
		Success:        true,
	}, nil
}

// moveBalance transfers value from sender to recipient, failing without
// mutating state if sender cannot afford it.
func (h *Host) moveBalance(sender, recipient vm.Address, value vm.Value) bool {
	from := h.account(sender)
	fromBal := valueToUint256(from.balance)
	val := valueToUint256(value)
	if fromBal.Lt(&val) {
		return false
	}
	fromBal.Sub(&fromBal, &val)
	from.balance = uint256ToValue(fromBal)

	to := h.account(recipient)
	toBal := valueToUint256(to.balance)
	toBal.Add(&toBal, &val)
	to.balance = uint256ToValue(toBal)
	return true
}

func transferBalance(h *Host, from, to vm.Address) {
	a := h.account(from)
	if a.balance.IsZero() {
		return
	}
	b := h.account(to)
	aBal, bBal := valueToUint256(a.balance), valueToUint256(b.balance)
	bBal.Add(&bBal, &aBal)
	b.balance = uint256ToValue(bBal)
	a.balance = vm.Value{}
}

func valueToUint256(v vm.Value) uint256.Int {
	var out uint256.Int
	out.SetBytes(v[:])
	return out
}

func uint256ToValue(v uint256.Int) vm.Value {
	b := v.Bytes32()
	return vm.Value(b)
}
