package ethvm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

func TestValidJumpdest(t *testing.T) {
	// JUMPDEST at 0, push data hiding a JUMPDEST byte at 2, JUMPDEST at 3.
	code := []byte{byte(JUMPDEST), byte(PUSH1), byte(JUMPDEST), byte(JUMPDEST), byte(STOP)}

	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 0)
	contract.SetCallCode(&testContract, crypto.Keccak256Hash(code), code)

	tests := []struct {
		dest  uint64
		valid bool
	}{
		{0, true},
		{1, false}, // PUSH1 itself
		{2, false}, // inside push data
		{3, true},
		{4, false}, // STOP
		{100, false},
	}
	for _, tt := range tests {
		if have := contract.validJumpdest(uint256.NewInt(tt.dest)); have != tt.valid {
			t.Errorf("dest %d: have %v, want %v", tt.dest, have, tt.valid)
		}
	}

	// Destinations beyond 63 bits can never be valid.
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 70)
	if contract.validJumpdest(huge) {
		t.Errorf("overflowing destination must be invalid")
	}
}

func TestContractAsDelegate(t *testing.T) {
	grandparent := AccountRef(testSender)
	parent := NewContract(grandparent, AccountRef(testContract), big.NewInt(7), 0)
	child := NewContract(parent, AccountRef(testBeneficiary), big.NewInt(0), 0)

	child.AsDelegate()
	if child.Caller() != testSender {
		t.Errorf("delegate caller mismatch: have %x, want %x", child.Caller(), testSender)
	}
	if child.Value().Cmp(big.NewInt(7)) != 0 {
		t.Errorf("delegate value mismatch: have %v, want 7", child.Value())
	}
	if child.Address() != testBeneficiary {
		t.Errorf("delegate must keep its own address")
	}
}

func TestContractUseGas(t *testing.T) {
	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 10)
	if !contract.UseGas(4) || contract.Gas != 6 {
		t.Fatalf("UseGas(4) failed, remaining %d", contract.Gas)
	}
	if contract.UseGas(7) {
		t.Errorf("UseGas must fail when the allowance is exceeded")
	}
	if contract.Gas != 6 {
		t.Errorf("failed UseGas must not consume gas, have %d", contract.Gas)
	}
}

func TestContractGetOp(t *testing.T) {
	contract := NewContract(AccountRef(testSender), AccountRef(testContract), new(big.Int), 0)
	contract.SetCallCode(&testContract, crypto.Keccak256Hash([]byte{byte(ADD)}), []byte{byte(ADD)})

	if op := contract.GetOp(0); op != ADD {
		t.Errorf("GetOp(0) mismatch: have %v, want ADD", op)
	}
	if op := contract.GetOp(5); op != STOP {
		t.Errorf("out of range reads must yield STOP, have %v", op)
	}
}
