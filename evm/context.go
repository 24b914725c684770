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

// status is the terminal condition of a Frame's execution.
type status int

const (
	statusRunning status = iota
	statusStopped
	statusReturned
	statusReverted
	statusFailed
	statusSelfDestructed
)

// Context tracks everything that spans the lifetime of a call chain: the
// currently executing Frame, any suspended parent frames (for nested
// CALL/CREATE), the most recent sub-call's return data, the terminal
// status of the active frame, and whether the last executed instruction
// was a taken jump (used by the driver loop to skip the implicit pc++).
type Context struct {
	host    vm.Host
	current *Frame
	parents []*Frame

	returnData vm.Data
	status     status
	err        error
	isJump     bool

	cfg           Config
	jumpdestCache *lru.Cache[string, *jumpDestinations]
}

// NewContext creates a Context ready to execute msg as its outermost
// frame, using the default Config.
func NewContext(msg vm.Parameters) *Context {
	return NewContextWithConfig(msg, Config{})
}

// NewContextWithConfig behaves like NewContext but applies cfg's cache
// toggles instead of the package defaults. cfg.Logger is not used here;
// RunWithConfig attaches it.
func NewContextWithConfig(msg vm.Parameters, cfg Config) *Context {
	c := &Context{
		host:    msg.Context,
		current: newFrame(msg),
		status:  statusRunning,
		cfg:     cfg,
	}
	if cfg.JumpdestCacheSize > 0 {
		cache, _ := lru.New[string, *jumpDestinations](cfg.JumpdestCacheSize)
		c.jumpdestCache = cache
	}
	return c
}

// destinationsFor lazily computes (and, unless disabled by Config, caches
// keyed by code hash) the set of valid JUMPDEST offsets for f's code.
func (c *Context) destinationsFor(f *Frame) *jumpDestinations {
	if f.jumpdests != nil {
		return f.jumpdests
	}
	if c.cfg.JumpdestCacheSize < 0 {
		f.jumpdests = analyzeJumpDestinations(f.code)
		return f.jumpdests
	}
	cache := jumpDestCache
	if c.jumpdestCache != nil {
		cache = c.jumpdestCache
	}
	f.jumpdests = lookupJumpDestinations(cache, f.codeHash(), f.code)
	return f.jumpdests
}

// hashKeccak hashes data through the shared memoizing cache, unless
// Config.DisableKeccakCache opts this run out of it.
func (c *Context) hashKeccak(data []byte) vm.Hash {
	if c.cfg.DisableKeccakCache {
		return Keccak256(data)
	}
	return sha3Cache.hash(data)
}

// CurrentFrame returns the Frame presently executing.
func (c *Context) CurrentFrame() *Frame { return c.current }

// PushFrame suspends the current frame and makes msg's frame active. The
// CALL/CREATE family handlers in this package do not call it; they hand
// sub-calls to Host.Call.
func (c *Context) PushFrame(msg vm.Parameters) {
	c.parents = append(c.parents, c.current)
	c.current = newFrame(msg)
	c.status = statusRunning
}

// PopFrame discards the current (child) frame and restores the most
// recently suspended parent, returning the child so its result can be
// inspected before release.
func (c *Context) PopFrame() *Frame {
	child := c.current
	n := len(c.parents)
	c.current = c.parents[n-1]
	c.parents = c.parents[:n-1]
	c.status = statusRunning
	return child
}

// HasParent reports whether PopFrame can be called.
func (c *Context) HasParent() bool { return len(c.parents) > 0 }

// Depth returns the current call-chain depth, 0 for the outermost frame.
func (c *Context) Depth() int { return len(c.parents) }

// SetReturnData records the output of the most recently completed
// sub-call, consumed by RETURNDATACOPY/RETURNDATASIZE in the parent.
func (c *Context) SetReturnData(data vm.Data) { c.returnData = data }

// ReturnData returns the most recently recorded sub-call output.
func (c *Context) ReturnData() vm.Data { return c.returnData }

// SetStatus records the terminal condition of the active frame.
func (c *Context) SetStatus(s status, err error) {
	c.status = s
	c.err = err
}

// Status returns the terminal condition of the active frame.
func (c *Context) Status() status { return c.status }

// Err returns the error associated with a statusFailed termination, or
// nil.
func (c *Context) Err() error { return c.err }

// SetIsJump records whether the just-executed instruction performed a
// taken jump, so the driver loop knows not to auto-increment pc.
func (c *Context) SetIsJump(v bool) { c.isJump = v }

// IsJump reports whether the just-executed instruction performed a taken
// jump.
func (c *Context) IsJump() bool { return c.isJump }
