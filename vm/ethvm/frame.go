package ethvm

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Frame accumulates the side effects of one transaction's frame tree: log
// records, the storage refund counter and the pending selfdestruct set.
// Nested calls mutate the same Frame; the orchestrator snapshots it before
// dispatch and restores the snapshot when the nested frame fails, so failed
// frames contribute nothing but the gas they consumed.
//
// The refund counter is signed. Within a single frame EIP-1283 may subtract
// more than the frame itself credited; only the transaction-wide sum is
// guaranteed non-negative.
type Frame struct {
	logs          []*types.Log
	gasRefund     int64
	selfdestructs mapset.Set[common.Address]
	logIndex      uint
}

// frameSnapshot captures the restorable portion of a Frame. Log rollback is
// truncation since logs are append-only; the selfdestruct set is cloned
// because entries are only ever added.
type frameSnapshot struct {
	logsLen       int
	gasRefund     int64
	selfdestructs mapset.Set[common.Address]
}

// NewFrame returns an empty side-effect accumulator for a fresh transaction.
func NewFrame() *Frame {
	return &Frame{
		selfdestructs: mapset.NewThreadUnsafeSet[common.Address](),
	}
}

// AddLog appends a log record produced by the currently executing frame.
func (f *Frame) AddLog(log *types.Log) {
	log.Index = f.logIndex
	f.logIndex++
	f.logs = append(f.logs, log)
}

// Logs returns the accumulated log records in emission order.
func (f *Frame) Logs() []*types.Log {
	return f.logs
}

// RefundAdd credits the storage refund counter.
func (f *Frame) RefundAdd(gas uint64) {
	f.gasRefund += int64(gas)
}

// RefundSub debits the storage refund counter. The counter may go negative
// here; see the type comment.
func (f *Frame) RefundSub(gas uint64) {
	f.gasRefund -= int64(gas)
}

// Refund returns the current value of the refund counter.
func (f *Frame) Refund() int64 {
	return f.gasRefund
}

// MarkSelfdestruct records addr as pending destruction. It reports whether
// the address was newly marked.
func (f *Frame) MarkSelfdestruct(addr common.Address) bool {
	return f.selfdestructs.Add(addr)
}

// HasSelfdestructed reports whether addr is already pending destruction.
func (f *Frame) HasSelfdestructed(addr common.Address) bool {
	return f.selfdestructs.Contains(addr)
}

// Selfdestructs returns the addresses pending destruction.
func (f *Frame) Selfdestructs() []common.Address {
	return f.selfdestructs.ToSlice()
}

func (f *Frame) snapshot() frameSnapshot {
	return frameSnapshot{
		logsLen:       len(f.logs),
		gasRefund:     f.gasRefund,
		selfdestructs: f.selfdestructs.Clone(),
	}
}

func (f *Frame) revert(snap frameSnapshot) {
	f.logs = f.logs[:snap.logsLen]
	f.logIndex = uint(snap.logsLen)
	f.gasRefund = snap.gasRefund
	f.selfdestructs = snap.selfdestructs
}
