package params

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRulesAllForks(t *testing.T) {
	rules := AllProtocolChanges.Rules(big.NewInt(0))
	assert.True(t, rules.IsHomestead)
	assert.True(t, rules.IsEIP150)
	assert.True(t, rules.IsEIP155)
	assert.True(t, rules.IsEIP158)
	assert.True(t, rules.IsByzantium)
	assert.True(t, rules.IsConstantinople)
	assert.True(t, rules.IsPetersburg)
	assert.Equal(t, big.NewInt(1337), rules.ChainID)
}

func TestRulesConstantinopleKeepsNetMetering(t *testing.T) {
	rules := ConstantinopleChainConfig.Rules(big.NewInt(100))
	assert.True(t, rules.IsConstantinople)
	assert.False(t, rules.IsPetersburg, "an unscheduled Petersburg keeps EIP-1283 live")
}

func TestIsForked(t *testing.T) {
	config := &ChainConfig{ByzantiumBlock: big.NewInt(10)}
	assert.False(t, config.IsByzantium(big.NewInt(9)))
	assert.True(t, config.IsByzantium(big.NewInt(10)))
	assert.True(t, config.IsByzantium(big.NewInt(11)))

	// Unscheduled forks are never active.
	assert.False(t, config.IsConstantinople(big.NewInt(1000000)))
	assert.False(t, config.IsByzantium(nil))
}

func TestRulesNilChainID(t *testing.T) {
	config := &ChainConfig{}
	rules := config.Rules(big.NewInt(0))
	assert.NotNil(t, rules.ChainID)
	assert.Zero(t, rules.ChainID.Sign())
}

func TestChainConfigString(t *testing.T) {
	s := AllProtocolChanges.String()
	assert.Contains(t, s, "ChainID: 1337")
	assert.Contains(t, s, "Constantinople: 0")
}
