package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Message is a fully derived inter-frame call request. It carries everything
// the VM needs to spawn the outermost frame of a call or a creation.
type Message struct {
	to           *common.Address
	from         common.Address
	nonce        uint64
	amount       *big.Int
	gasLimit     uint64
	gasPrice     *big.Int
	data         []byte
	static       bool
	delegateCall bool
}

func NewMessage(from common.Address, to *common.Address, nonce uint64, amount *big.Int, gasLimit uint64, gasPrice *big.Int, data []byte, static bool, delegateCall bool) Message {
	return Message{
		from:         from,
		to:           to,
		nonce:        nonce,
		amount:       amount,
		gasLimit:     gasLimit,
		gasPrice:     gasPrice,
		data:         data,
		static:       static,
		delegateCall: delegateCall,
	}
}

func (m Message) From() common.Address { return m.from }

// To returns the recipient address of the message.
// For contract-creation messages, To returns nil.
func (m Message) To() *common.Address { return m.to }

func (m Message) GasPrice() *big.Int { return m.gasPrice }
func (m Message) Value() *big.Int    { return m.amount }
func (m Message) Gas() uint64        { return m.gasLimit }
func (m Message) Nonce() uint64      { return m.nonce }
func (m Message) Data() []byte       { return m.data }
func (m Message) Static() bool       { return m.static }
func (m Message) DelegateCall() bool { return m.delegateCall }

// IsCreation reports whether the message spawns a contract-creation frame.
func (m Message) IsCreation() bool { return m.to == nil }

// ExecutionResult is the frame-result record handed back by the VM once the
// outermost frame has exited. Err is nil on success, ErrExecutionReverted
// when the frame reverted, and one of the consuming trap kinds otherwise.
type ExecutionResult struct {
	GasUsed        uint64       // total gas consumed by the frame tree
	Err            error        // trap that ended the outermost frame, if any
	ReturnData     []byte       // data returned by RETURN or REVERT
	Logs           []*types.Log // log records of all successful frames, in emission order
	GasRefund      uint64       // accumulated storage-clear credit, clamped at zero
	CreatedAddress *common.Address
}

// Unwrap returns the internal VM error, allowing callers to errors.Is against it.
func (result *ExecutionResult) Unwrap() error {
	return result.Err
}

// Failed reports whether the frame ended in a trap, reverts included.
func (result *ExecutionResult) Failed() bool { return result.Err != nil }

// Return returns the data after execution if no error occurs.
func (result *ExecutionResult) Return() []byte {
	if result.Err != nil {
		return nil
	}
	return common.CopyBytes(result.ReturnData)
}
