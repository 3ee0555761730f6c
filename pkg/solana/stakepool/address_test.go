package stakepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWithdrawAuthorityAddress(t *testing.T) {
	pool := testKey(0x01)

	authority, err := FindWithdrawAuthorityAddress(pool)
	require.NoError(t, err)
	require.Len(t, authority, 32)

	again, err := FindWithdrawAuthorityAddress(pool)
	require.NoError(t, err)
	assert.Equal(t, authority, again)

	other, err := FindWithdrawAuthorityAddress(testKey(0x02))
	require.NoError(t, err)
	assert.NotEqual(t, authority, other)

	deposit, err := FindDepositAuthorityAddress(pool)
	require.NoError(t, err)
	assert.NotEqual(t, authority, deposit)
}

func TestFindValidatorStakeAddress(t *testing.T) {
	vote := testKey(0x03)
	pool := testKey(0x04)

	canonical, err := FindValidatorStakeAddress(vote, pool, 0)
	require.NoError(t, err)

	seeded, err := FindValidatorStakeAddress(vote, pool, 1)
	require.NoError(t, err)
	assert.NotEqual(t, canonical, seeded)

	otherSeed, err := FindValidatorStakeAddress(vote, pool, 2)
	require.NoError(t, err)
	assert.NotEqual(t, seeded, otherSeed)
}

func TestFindTransientStakeAddress(t *testing.T) {
	vote := testKey(0x05)
	pool := testKey(0x06)

	a, err := FindTransientStakeAddress(vote, pool, 0)
	require.NoError(t, err)

	b, err := FindTransientStakeAddress(vote, pool, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	validatorStake, err := FindValidatorStakeAddress(vote, pool, 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, validatorStake)
}

func TestFindEphemeralStakeAddress(t *testing.T) {
	pool := testKey(0x07)

	a, err := FindEphemeralStakeAddress(pool, 0)
	require.NoError(t, err)

	b, err := FindEphemeralStakeAddress(pool, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFindMetadataAddress(t *testing.T) {
	a, err := FindMetadataAddress(testKey(0x08))
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := FindMetadataAddress(testKey(0x09))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
