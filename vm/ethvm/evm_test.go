package ethvm

import (
	"math/big"
	"testing"

	"github.com/CaduceusMetaverseProtocol/MetaEEI/core"
	"github.com/CaduceusMetaverseProtocol/MetaEEI/params"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSender      = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testContract    = common.HexToAddress("0x2000000000000000000000000000000000000002")
	testBeneficiary = common.HexToAddress("0x3000000000000000000000000000000000000003")
)

func newTestEVM(config *params.ChainConfig) (*EVM, *MemStateDB) {
	statedb := NewMemStateDB()
	blockCtx := BlockContext{
		CanTransfer: CanTransfer,
		Transfer:    Transfer,
		GetHash:     func(n uint64) common.Hash { return common.Hash{} },
		Coinbase:    common.Address{},
		GasLimit:    10_000_000,
		BlockNumber: big.NewInt(10),
		Time:        big.NewInt(1658712000),
		Difficulty:  big.NewInt(0),
	}
	txCtx := TxContext{
		Origin:   testSender,
		GasPrice: big.NewInt(1),
	}
	evm := NewEVM(blockCtx, txCtx, statedb, config, Config{})
	return evm, statedb
}

func TestCallValueTransferNoCode(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.AddBalance(testSender, big.NewInt(1000))

	ret, leftOver, err := evm.Call(AccountRef(testSender), testBeneficiary, nil, 50000, big.NewInt(400))
	require.NoError(t, err)
	require.Nil(t, ret)
	assert.Equal(t, uint64(50000), leftOver, "plain transfers should not consume gas")
	assert.Equal(t, big.NewInt(600), statedb.GetBalance(testSender))
	assert.Equal(t, big.NewInt(400), statedb.GetBalance(testBeneficiary))
}

func TestCallInsufficientBalance(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.AddBalance(testSender, big.NewInt(10))

	_, leftOver, err := evm.Call(AccountRef(testSender), testBeneficiary, nil, 50000, big.NewInt(400))
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, uint64(50000), leftOver)
	assert.False(t, statedb.Exist(testBeneficiary))
}

func TestCallDepthLimit(t *testing.T) {
	evm, _ := newTestEVM(params.TestChainConfig)
	evm.depth = int(params.CallCreateDepth) + 1

	_, leftOver, err := evm.Call(AccountRef(testSender), testBeneficiary, nil, 7777, new(big.Int))
	require.ErrorIs(t, err, ErrDepth)
	assert.Equal(t, uint64(7777), leftOver, "depth failures hand the gas back to the caller")
}

func TestCallStoresValue(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// PUSH1 0x01, PUSH1 0x00, SSTORE, STOP
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(SSTORE), byte(STOP)})
	statedb.Finalise()

	_, leftOver, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.NoError(t, err)
	assert.Equal(t, common.BigToHash(big.NewInt(1)), statedb.GetState(testContract, common.Hash{}))
	// 2 pushes at 3 gas each plus the 20000 set cost
	assert.Equal(t, uint64(100000-20006), leftOver)
}

func TestCallRevertKeepsRemainingGas(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// PUSH1 0x00, PUSH1 0x00, REVERT
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(REVERT)})
	statedb.Finalise()

	_, leftOver, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrExecutionReverted)
	assert.Equal(t, uint64(100000-6), leftOver, "revert must return the unconsumed gas")
}

func TestCallErrorConsumesAllGas(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// JUMP to an invalid destination
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x20, byte(JUMP)})
	statedb.Finalise()

	_, leftOver, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrInvalidJump)
	assert.Equal(t, uint64(0), leftOver)
}

func TestCallRevertRollsBackState(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// PUSH1 0x01, PUSH1 0x00, SSTORE, PUSH1 0x00, PUSH1 0x00, REVERT
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{
		byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(SSTORE),
		byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(REVERT),
	})
	statedb.Finalise()

	_, _, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrExecutionReverted)
	assert.Equal(t, common.Hash{}, statedb.GetState(testContract, common.Hash{}))
}

func TestStaticCallWriteProtection(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(SSTORE), byte(STOP)})
	statedb.Finalise()

	_, leftOver, err := evm.StaticCall(AccountRef(testSender), testContract, nil, 100000)
	require.ErrorIs(t, err, ErrWriteProtection)
	assert.Equal(t, uint64(0), leftOver)
	assert.Equal(t, common.Hash{}, statedb.GetState(testContract, common.Hash{}))
}

func TestLogEmittedAndKept(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// PUSH1 0x00, PUSH1 0x00, LOG0, STOP
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(LOG0), byte(STOP)})
	statedb.Finalise()

	_, _, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.NoError(t, err)
	logs := evm.Frame().Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, testContract, logs[0].Address)
	assert.Equal(t, uint(0), logs[0].Index)
}

func TestLogDiscardedOnRevert(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	// PUSH1 0x00, PUSH1 0x00, LOG0, PUSH1 0x00, PUSH1 0x00, REVERT
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{
		byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(LOG0),
		byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(REVERT),
	})
	statedb.Finalise()

	_, _, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrExecutionReverted)
	assert.Len(t, evm.Frame().Logs(), 0, "logs of a reverted frame must not surface")
}

func TestCreateDepositsCode(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.AddBalance(testSender, big.NewInt(1))
	statedb.SetNonce(testSender, 5)
	statedb.Finalise()

	// Init code storing a single STOP byte and returning it:
	// PUSH1 0x00, PUSH1 0x00, MSTORE8, PUSH1 0x01, PUSH1 0x00, RETURN
	initCode := []byte{
		byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(MSTORE8),
		byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(RETURN),
	}
	ret, addr, leftOver, err := evm.Create(AccountRef(testSender), initCode, 100000, new(big.Int))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, ret)
	assert.Equal(t, []byte{0x00}, statedb.GetCode(addr))
	assert.Equal(t, uint64(6), statedb.GetNonce(testSender), "creation bumps the creator nonce")
	assert.Equal(t, uint64(1), statedb.GetNonce(addr), "new contracts start at nonce 1")
	assert.Less(t, leftOver, uint64(100000))
}

func TestCreateRevertRollsBackNonce(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.SetNonce(testSender, 5)
	statedb.Finalise()

	// PUSH1 0x00, PUSH1 0x00, REVERT
	initCode := []byte{byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(REVERT)}
	_, _, leftOver, err := evm.Create(AccountRef(testSender), initCode, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrExecutionReverted)
	assert.Equal(t, uint64(5), statedb.GetNonce(testSender), "failed creation must undo the nonce bump")
	assert.Equal(t, uint64(100000-6), leftOver)
}

func TestCreateCollision(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.SetNonce(testSender, 0)

	// Precompute the target address and occupy it.
	addr := crypto.CreateAddress(testSender, 0)
	statedb.CreateAccount(addr)
	statedb.SetNonce(addr, 1)
	statedb.Finalise()

	_, _, leftOver, err := evm.Create(AccountRef(testSender), []byte{byte(STOP)}, 100000, new(big.Int))
	require.ErrorIs(t, err, ErrContractAddressCollision)
	assert.Equal(t, uint64(0), leftOver, "collisions burn the frame's gas")
	assert.Equal(t, uint64(0), statedb.GetNonce(testSender))
}

func TestSelfdestructMovesBalance(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.CreateAccount(testContract)
	statedb.AddBalance(testContract, big.NewInt(100))
	code := append([]byte{byte(PUSH20)}, testBeneficiary.Bytes()...)
	code = append(code, byte(SELFDESTRUCT))
	statedb.SetCode(testContract, code)
	statedb.Finalise()

	_, _, err := evm.Call(AccountRef(testSender), testContract, nil, 100000, new(big.Int))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), statedb.GetBalance(testBeneficiary))
	assert.Equal(t, big.NewInt(0).Sign(), statedb.GetBalance(testContract).Sign())
	assert.True(t, evm.Frame().HasSelfdestructed(testContract))
	assert.Equal(t, int64(params.SelfdestructRefundGas), evm.Frame().Refund())
}

func TestRunCallTransfer(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.AddBalance(testSender, big.NewInt(1000))
	statedb.Finalise()

	msg := core.NewMessage(testSender, &testBeneficiary, 0, big.NewInt(250), 60000, big.NewInt(1), nil, false, false)
	result := evm.RunCall(&msg)
	require.NoError(t, result.Err)
	assert.False(t, result.Failed())
	assert.Equal(t, uint64(0), result.GasUsed)
	assert.Equal(t, big.NewInt(250), statedb.GetBalance(testBeneficiary))
}

func TestRunCallCreation(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.Finalise()

	initCode := []byte{
		byte(PUSH1), 0x00, byte(PUSH1), 0x00, byte(MSTORE8),
		byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(RETURN),
	}
	msg := core.NewMessage(testSender, nil, 0, new(big.Int), 100000, big.NewInt(1), initCode, false, false)
	result := evm.RunCall(&msg)
	require.NoError(t, result.Err)
	require.NotNil(t, result.CreatedAddress)
	assert.Equal(t, []byte{0x00}, statedb.GetCode(*result.CreatedAddress))
	assert.NotZero(t, result.GasUsed)
}

func TestRunCallStatic(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.CreateAccount(testContract)
	statedb.SetCode(testContract, []byte{byte(PUSH1), 0x01, byte(PUSH1), 0x00, byte(SSTORE), byte(STOP)})
	statedb.Finalise()

	msg := core.NewMessage(testSender, &testContract, 0, new(big.Int), 100000, big.NewInt(1), nil, true, false)
	result := evm.RunCall(&msg)
	require.ErrorIs(t, result.Err, ErrWriteProtection)
	assert.Equal(t, uint64(100000), result.GasUsed)
}
