package ethvm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// StateDB is an VM database for full state querying.
//
// Implementations must provide snapshot-and-revert semantics keyed to the
// lifetime of a call: the orchestrator wraps every nested frame in a
// Snapshot/RevertToSnapshot pair and relies on all account, code and storage
// mutations of a failed frame being rolled back.
type StateDB interface {
	CreateAccount(common.Address)

	SubBalance(common.Address, *big.Int)
	AddBalance(common.Address, *big.Int)
	GetBalance(common.Address) *big.Int

	GetNonce(common.Address) uint64
	SetNonce(common.Address, uint64)

	GetCodeHash(common.Address) common.Hash
	GetCode(common.Address) []byte
	SetCode(common.Address, []byte)
	GetCodeSize(common.Address) int

	// GetCommittedState returns the value the slot held when the current
	// transaction began. Together with GetState it forms the
	// (original, current) pair the net-gas SSTORE rules are keyed on.
	GetCommittedState(common.Address, common.Hash) common.Hash
	GetState(common.Address, common.Hash) common.Hash
	SetState(common.Address, common.Hash, common.Hash)

	// Exist reports whether the given account exists in state.
	// Notably this should also return true for accounts pending destruction.
	Exist(common.Address) bool
	// Empty returns whether the given account is empty. Empty
	// is defined according to EIP161 (balance = nonce = code = 0).
	Empty(common.Address) bool

	RevertToSnapshot(int)
	Snapshot() int
}

// Interpreter is the contract-code run loop. Run executes the contract's
// code against the given input and returns the frame's return data and the
// trap that ended it, if any.
type Interpreter interface {
	Run(contract *Contract, input []byte, readOnly bool) ([]byte, error)
}
