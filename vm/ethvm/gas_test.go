package ethvm

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestCallGas(t *testing.T) {
	big := new(uint256.Int).SetAllOne()
	tests := []struct {
		isEip150     bool
		availableGas uint64
		base         uint64
		callCost     *uint256.Int
		gas          uint64
		err          error
	}{
		// Pre EIP150 the requested amount is granted verbatim.
		{false, 6400, 0, uint256.NewInt(100), 100, nil},
		{false, 6400, 0, big, 0, ErrGasUintOverflow},
		// Post EIP150 forwarding is capped at 63/64 of what remains.
		{true, 6400, 0, big, 6300, nil},
		{true, 6400, 0, uint256.NewInt(100), 100, nil},
		{true, 6400, 6400, uint256.NewInt(100), 0, nil},
	}
	for i, tt := range tests {
		gas, err := callGas(tt.isEip150, tt.availableGas, tt.base, tt.callCost)
		if err != tt.err {
			t.Errorf("test %d: error mismatch: have %v, want %v", i, err, tt.err)
		}
		if gas != tt.gas {
			t.Errorf("test %d: gas mismatch: have %d, want %d", i, gas, tt.gas)
		}
	}
}
