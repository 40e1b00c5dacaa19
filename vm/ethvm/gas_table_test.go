package ethvm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/CaduceusMetaverseProtocol/MetaEEI/params"
)

// sstoreGas runs the SSTORE gas function against a stack holding the given
// key and value, returning the charged gas.
func sstoreGas(t *testing.T, evm *EVM, key, value uint64) uint64 {
	t.Helper()

	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 0)
	stack := newstack()
	defer returnStack(stack)
	stack.push(uint256.NewInt(value))
	stack.push(uint256.NewInt(key))

	gas, err := gasSStore(evm, contract, stack, NewMemory(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gas
}

func TestGasSStoreLegacy(t *testing.T) {
	tests := []struct {
		name    string
		current uint64
		value   uint64
		gas     uint64
		refund  int64
	}{
		{"create slot", 0, 1, params.SstoreSetGas, 0},
		{"delete slot", 1, 0, params.SstoreClearGas, int64(params.SstoreRefundGas)},
		{"update slot", 1, 2, params.SstoreResetGas, 0},
		{"zero noop", 0, 0, params.SstoreResetGas, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evm, statedb := newTestEVM(params.TestChainConfig)
			if tt.current != 0 {
				statedb.SetState(testContract, common.Hash{}, common.BigToHash(new(big.Int).SetUint64(tt.current)))
				statedb.Finalise()
			}
			if gas := sstoreGas(t, evm, 0, tt.value); gas != tt.gas {
				t.Errorf("gas mismatch: have %d, want %d", gas, tt.gas)
			}
			if refund := evm.frame.Refund(); refund != tt.refund {
				t.Errorf("refund mismatch: have %d, want %d", refund, tt.refund)
			}
		})
	}
}

func TestGasSStoreNetMetering(t *testing.T) {
	tests := []struct {
		name     string
		original uint64
		current  uint64
		value    uint64
		gas      uint64
		refund   int64
	}{
		{"noop", 1, 1, 1, params.NetSstoreNoopGas, 0},
		{"create slot", 0, 0, 1, params.NetSstoreInitGas, 0},
		{"clean update", 1, 1, 2, params.NetSstoreCleanGas, 0},
		{"clean delete", 1, 1, 0, params.NetSstoreCleanGas, int64(params.NetSstoreClearRefund)},
		{"dirty update", 1, 2, 3, params.NetSstoreDirtyGas, 0},
		{"dirty reset", 1, 2, 1, params.NetSstoreDirtyGas, int64(params.NetSstoreResetRefund)},
		{"dirty reset to zero", 0, 2, 0, params.NetSstoreDirtyGas, int64(params.NetSstoreResetClearRefund)},
		{"dirty recreate", 1, 0, 2, params.NetSstoreDirtyGas, -int64(params.NetSstoreClearRefund)},
		{"dirty delete", 1, 2, 0, params.NetSstoreDirtyGas, int64(params.NetSstoreClearRefund)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evm, statedb := newTestEVM(params.ConstantinopleChainConfig)
			if tt.original != 0 {
				statedb.SetState(testContract, common.Hash{}, common.BigToHash(new(big.Int).SetUint64(tt.original)))
			}
			statedb.Finalise()
			if tt.current != tt.original {
				statedb.SetState(testContract, common.Hash{}, common.BigToHash(new(big.Int).SetUint64(tt.current)))
			}
			if gas := sstoreGas(t, evm, 0, tt.value); gas != tt.gas {
				t.Errorf("gas mismatch: have %d, want %d", gas, tt.gas)
			}
			if refund := evm.frame.Refund(); refund != tt.refund {
				t.Errorf("refund mismatch: have %d, want %d", refund, tt.refund)
			}
		})
	}
}

func TestGasSelfdestruct(t *testing.T) {
	evm, statedb := newTestEVM(params.TestChainConfig)
	statedb.AddBalance(testContract, big.NewInt(1))

	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 0)
	stack := newstack()
	defer returnStack(stack)
	stack.push(new(uint256.Int).SetBytes(testBeneficiary.Bytes()))

	// Beneficiary does not exist yet, so the new-account surcharge applies.
	gas, err := gasSelfdestruct(evm, contract, stack, NewMemory(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := params.SelfdestructGasEIP150 + params.CreateBySelfdestructGas; gas != want {
		t.Errorf("gas mismatch: have %d, want %d", gas, want)
	}
	if refund := evm.frame.Refund(); refund != int64(params.SelfdestructRefundGas) {
		t.Errorf("refund mismatch: have %d, want %d", refund, params.SelfdestructRefundGas)
	}

	// A second destruct of the same contract adds no further refund, and an
	// existing beneficiary drops the surcharge.
	evm.frame.MarkSelfdestruct(testContract)
	statedb.AddBalance(testBeneficiary, big.NewInt(1))
	gas, err = gasSelfdestruct(evm, contract, stack, NewMemory(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gas != params.SelfdestructGasEIP150 {
		t.Errorf("gas mismatch: have %d, want %d", gas, params.SelfdestructGasEIP150)
	}
	if refund := evm.frame.Refund(); refund != int64(params.SelfdestructRefundGas) {
		t.Errorf("refund must not grow on repeat destruct: have %d", refund)
	}
}

func TestGasCallNewAccount(t *testing.T) {
	evm, _ := newTestEVM(params.TestChainConfig)

	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 100000)
	stack := newstack()
	defer returnStack(stack)
	// CALL operands from the top: gas, to, value, inOffset, inSize, retOffset, retSize.
	for i := 0; i < 4; i++ {
		stack.push(new(uint256.Int))
	}
	stack.push(uint256.NewInt(1)) // value
	stack.push(new(uint256.Int).SetBytes(testBeneficiary.Bytes()))
	stack.push(new(uint256.Int).SetAllOne()) // request everything

	gas, err := gasCall(evm, contract, stack, NewMemory(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Value transfer to a non-existent account pays both surcharges plus the
	// forwarded 63/64 remainder.
	base := params.CallValueTransferGas + params.CallNewAccountGas
	avail := contract.Gas - base
	if want := base + (avail - avail/64); gas != want {
		t.Errorf("gas mismatch: have %d, want %d", gas, want)
	}
	if evm.callGasTemp != avail-avail/64 {
		t.Errorf("callGasTemp mismatch: have %d", evm.callGasTemp)
	}
}
