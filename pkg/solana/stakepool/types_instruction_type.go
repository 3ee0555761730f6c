package stakepool

// InstructionType is the one byte discriminant at the start of every
// stake pool instruction's data.
type InstructionType uint8

const (
	InstructionTypeInitialize InstructionType = iota
	InstructionTypeAddValidatorToPool
	InstructionTypeRemoveValidatorFromPool
	InstructionTypeDecreaseValidatorStake
	InstructionTypeIncreaseValidatorStake
	InstructionTypeSetPreferredValidator
	InstructionTypeUpdateValidatorListBalance
	InstructionTypeUpdateStakePoolBalance
	InstructionTypeCleanupRemovedValidatorEntries
	InstructionTypeDepositStake
	InstructionTypeWithdrawStake
	InstructionTypeSetManager
	InstructionTypeSetFee
	InstructionTypeSetStaker
	InstructionTypeDepositSol
	InstructionTypeSetFundingAuthority
	InstructionTypeWithdrawSol
	InstructionTypeCreateTokenMetadata
	InstructionTypeUpdateTokenMetadata
	InstructionTypeIncreaseAdditionalValidatorStake
	InstructionTypeDecreaseAdditionalValidatorStake
	InstructionTypeDecreaseValidatorStakeWithReserve
	InstructionTypeRedelegate
)

func (t InstructionType) String() string {
	switch t {
	case InstructionTypeInitialize:
		return "initialize"
	case InstructionTypeAddValidatorToPool:
		return "add_validator_to_pool"
	case InstructionTypeRemoveValidatorFromPool:
		return "remove_validator_from_pool"
	case InstructionTypeDecreaseValidatorStake:
		return "decrease_validator_stake"
	case InstructionTypeIncreaseValidatorStake:
		return "increase_validator_stake"
	case InstructionTypeSetPreferredValidator:
		return "set_preferred_validator"
	case InstructionTypeUpdateValidatorListBalance:
		return "update_validator_list_balance"
	case InstructionTypeUpdateStakePoolBalance:
		return "update_stake_pool_balance"
	case InstructionTypeCleanupRemovedValidatorEntries:
		return "cleanup_removed_validator_entries"
	case InstructionTypeDepositStake:
		return "deposit_stake"
	case InstructionTypeWithdrawStake:
		return "withdraw_stake"
	case InstructionTypeSetManager:
		return "set_manager"
	case InstructionTypeSetFee:
		return "set_fee"
	case InstructionTypeSetStaker:
		return "set_staker"
	case InstructionTypeDepositSol:
		return "deposit_sol"
	case InstructionTypeSetFundingAuthority:
		return "set_funding_authority"
	case InstructionTypeWithdrawSol:
		return "withdraw_sol"
	case InstructionTypeCreateTokenMetadata:
		return "create_token_metadata"
	case InstructionTypeUpdateTokenMetadata:
		return "update_token_metadata"
	case InstructionTypeIncreaseAdditionalValidatorStake:
		return "increase_additional_validator_stake"
	case InstructionTypeDecreaseAdditionalValidatorStake:
		return "decrease_additional_validator_stake"
	case InstructionTypeDecreaseValidatorStakeWithReserve:
		return "decrease_validator_stake_with_reserve"
	case InstructionTypeRedelegate:
		return "redelegate"
	}
	return "unknown"
}
