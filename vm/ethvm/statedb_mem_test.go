package ethvm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStateDBBalance(t *testing.T) {
	state := NewMemStateDB()

	state.AddBalance(testSender, big.NewInt(100))
	state.SubBalance(testSender, big.NewInt(30))
	assert.Equal(t, big.NewInt(70), state.GetBalance(testSender))

	// The returned balance is a copy.
	state.GetBalance(testSender).SetInt64(0)
	assert.Equal(t, big.NewInt(70), state.GetBalance(testSender))

	assert.Zero(t, state.GetBalance(testContract).Sign())
}

func TestMemStateDBNonceAndCode(t *testing.T) {
	state := NewMemStateDB()

	assert.Equal(t, uint64(0), state.GetNonce(testSender))
	state.SetNonce(testSender, 5)
	assert.Equal(t, uint64(5), state.GetNonce(testSender))

	code := []byte{byte(PUSH1), 0x00}
	state.SetCode(testContract, code)
	assert.Equal(t, code, state.GetCode(testContract))
	assert.Equal(t, len(code), state.GetCodeSize(testContract))
	assert.Equal(t, crypto.Keccak256Hash(code), state.GetCodeHash(testContract))

	// Absent accounts have a zero code hash, not the empty-code hash.
	assert.Equal(t, common.Hash{}, state.GetCodeHash(testBeneficiary))
}

func TestMemStateDBStorageZeroValue(t *testing.T) {
	state := NewMemStateDB()
	key := common.HexToHash("0x01")

	state.SetState(testContract, key, common.HexToHash("0xff"))
	assert.Equal(t, common.HexToHash("0xff"), state.GetState(testContract, key))

	// Writing the zero word is the same as clearing the slot.
	state.SetState(testContract, key, common.Hash{})
	assert.Equal(t, common.Hash{}, state.GetState(testContract, key))
	assert.Empty(t, state.accounts[testContract].storage)
}

func TestMemStateDBCommittedState(t *testing.T) {
	state := NewMemStateDB()
	key := common.HexToHash("0x01")

	state.SetState(testContract, key, common.HexToHash("0x0a"))
	state.Finalise()

	// Before any write in the new transaction both views agree.
	assert.Equal(t, common.HexToHash("0x0a"), state.GetCommittedState(testContract, key))

	state.SetState(testContract, key, common.HexToHash("0x0b"))
	state.SetState(testContract, key, common.HexToHash("0x0c"))
	assert.Equal(t, common.HexToHash("0x0c"), state.GetState(testContract, key))
	assert.Equal(t, common.HexToHash("0x0a"), state.GetCommittedState(testContract, key))

	state.Finalise()
	assert.Equal(t, common.HexToHash("0x0c"), state.GetCommittedState(testContract, key))
}

func TestMemStateDBSnapshotRevert(t *testing.T) {
	state := NewMemStateDB()
	key := common.HexToHash("0x01")

	state.AddBalance(testSender, big.NewInt(100))
	state.SetState(testContract, key, common.HexToHash("0x0a"))

	outer := state.Snapshot()
	state.AddBalance(testSender, big.NewInt(50))
	state.SetNonce(testSender, 1)

	inner := state.Snapshot()
	state.SetState(testContract, key, common.HexToHash("0x0b"))
	state.SetCode(testBeneficiary, []byte{1})

	state.RevertToSnapshot(inner)
	assert.Equal(t, common.HexToHash("0x0a"), state.GetState(testContract, key))
	assert.False(t, state.Exist(testBeneficiary))
	assert.Equal(t, big.NewInt(150), state.GetBalance(testSender))

	state.RevertToSnapshot(outer)
	assert.Equal(t, big.NewInt(100), state.GetBalance(testSender))
	assert.Equal(t, uint64(0), state.GetNonce(testSender))
}

func TestMemStateDBRevertUnknownSnapshot(t *testing.T) {
	state := NewMemStateDB()
	require.Panics(t, func() {
		state.RevertToSnapshot(42)
	})
}

func TestMemStateDBCreateAccountCarriesBalance(t *testing.T) {
	state := NewMemStateDB()
	state.AddBalance(testContract, big.NewInt(55))
	state.SetNonce(testContract, 3)
	state.SetCode(testContract, []byte{1, 2, 3})

	snap := state.Snapshot()
	state.CreateAccount(testContract)

	assert.Equal(t, big.NewInt(55), state.GetBalance(testContract))
	assert.Equal(t, uint64(0), state.GetNonce(testContract))
	assert.Nil(t, state.GetCode(testContract))

	state.RevertToSnapshot(snap)
	assert.Equal(t, uint64(3), state.GetNonce(testContract))
	assert.Equal(t, []byte{1, 2, 3}, state.GetCode(testContract))
}

func TestMemStateDBExistAndEmpty(t *testing.T) {
	state := NewMemStateDB()

	assert.False(t, state.Exist(testSender))
	assert.True(t, state.Empty(testSender))

	// A touched account with nothing in it exists but is still empty.
	state.AddBalance(testSender, new(big.Int))
	assert.True(t, state.Exist(testSender))
	assert.True(t, state.Empty(testSender))

	state.SetNonce(testSender, 1)
	assert.False(t, state.Empty(testSender))

	state.AddBalance(testContract, big.NewInt(1))
	assert.False(t, state.Empty(testContract))
}
