package core

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestMessageAccessors(t *testing.T) {
	to := common.HexToAddress("0x02")
	msg := NewMessage(common.HexToAddress("0x01"), &to, 7, big.NewInt(100), 21000, big.NewInt(2), []byte{0xca, 0xfe}, true, false)

	assert.Equal(t, common.HexToAddress("0x01"), msg.From())
	assert.Equal(t, &to, msg.To())
	assert.Equal(t, uint64(7), msg.Nonce())
	assert.Equal(t, big.NewInt(100), msg.Value())
	assert.Equal(t, uint64(21000), msg.Gas())
	assert.Equal(t, big.NewInt(2), msg.GasPrice())
	assert.Equal(t, []byte{0xca, 0xfe}, msg.Data())
	assert.True(t, msg.Static())
	assert.False(t, msg.DelegateCall())
	assert.False(t, msg.IsCreation())
}

func TestMessageCreation(t *testing.T) {
	msg := NewMessage(common.HexToAddress("0x01"), nil, 0, new(big.Int), 100000, new(big.Int), []byte{0x60}, false, false)
	assert.True(t, msg.IsCreation())
	assert.Nil(t, msg.To())
}

func TestExecutionResult(t *testing.T) {
	ok := &ExecutionResult{ReturnData: []byte{1, 2}}
	assert.False(t, ok.Failed())
	assert.Equal(t, []byte{1, 2}, ok.Return())

	// The returned slice is a copy.
	ok.Return()[0] = 9
	assert.Equal(t, []byte{1, 2}, ok.ReturnData)

	failed := &ExecutionResult{Err: assert.AnError, ReturnData: []byte{3}}
	assert.True(t, failed.Failed())
	assert.Nil(t, failed.Return())
	assert.Equal(t, assert.AnError, failed.Unwrap())
}
