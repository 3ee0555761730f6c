package stakepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorList_RoundTrip(t *testing.T) {
	expected := ValidatorList{
		AccountType:   AccountTypeValidatorList,
		MaxValidators: 100,
		Validators: []ValidatorStakeInfo{
			{
				LastUpdateEpoch:    0xC3,
				Status:             StakeStatusActive,
				VoteAccountAddress: testKey(0x11),
			},
			{
				LastUpdateEpoch:    0xC3,
				Status:             StakeStatusActive,
				VoteAccountAddress: testKey(0x22),
			},
			{
				LastUpdateEpoch:    0xC3,
				Status:             StakeStatusDeactivatingTransient,
				VoteAccountAddress: testKey(0x33),
			},
		},
	}

	data, err := expected.Marshal()
	require.NoError(t, err)

	require.Len(t, data, validatorListHeaderSize+3*ValidatorStakeInfoSize)
	assert.EqualValues(t, AccountTypeValidatorList, data[0])

	var actual ValidatorList
	require.NoError(t, actual.Unmarshal(data))

	require.Len(t, actual.Validators, 3)
	assert.Equal(t, expected, actual)
}

func TestValidatorList_Empty(t *testing.T) {
	expected := ValidatorList{
		AccountType:   AccountTypeValidatorList,
		MaxValidators: 10,
	}

	data, err := expected.Marshal()
	require.NoError(t, err)
	require.Len(t, data, validatorListHeaderSize)

	var actual ValidatorList
	require.NoError(t, actual.Unmarshal(data))
	assert.Empty(t, actual.Validators)
	assert.EqualValues(t, 10, actual.MaxValidators)
}

func TestValidatorList_PreallocatedAccount(t *testing.T) {
	expected := ValidatorList{
		AccountType:   AccountTypeValidatorList,
		MaxValidators: 100,
		Validators: []ValidatorStakeInfo{
			{
				ActiveStakeLamports: 42,
				Status:              StakeStatusActive,
				VoteAccountAddress:  testKey(0x44),
			},
		},
	}

	data, err := expected.Marshal()
	require.NoError(t, err)

	// On-chain accounts are allocated for max_validators up front.
	padded := make([]byte, CalculateValidatorListSize(100))
	copy(padded, data)

	var actual ValidatorList
	require.NoError(t, actual.Unmarshal(padded))
	assert.Equal(t, expected, actual)
}

func TestValidatorList_InvalidAccountType(t *testing.T) {
	list := ValidatorList{
		AccountType:   AccountTypeStakePool,
		MaxValidators: 1,
	}

	data, err := list.Marshal()
	require.NoError(t, err)

	var actual ValidatorList
	assert.ErrorIs(t, actual.Unmarshal(data), ErrInvalidAccountType)
}

func TestValidatorList_TruncatedEntries(t *testing.T) {
	list := ValidatorList{
		AccountType:   AccountTypeValidatorList,
		MaxValidators: 5,
		Validators: []ValidatorStakeInfo{
			{Status: StakeStatusActive, VoteAccountAddress: testKey(0x55)},
		},
	}

	data, err := list.Marshal()
	require.NoError(t, err)

	var actual ValidatorList
	assert.ErrorIs(t, actual.Unmarshal(data[:len(data)-10]), ErrInvalidAccountData)
}

func TestCalculateValidatorListSize(t *testing.T) {
	assert.Equal(t, 9, CalculateValidatorListSize(0))
	assert.Equal(t, 9+73, CalculateValidatorListSize(1))
	assert.Equal(t, 9+100*73, CalculateValidatorListSize(100))
}
