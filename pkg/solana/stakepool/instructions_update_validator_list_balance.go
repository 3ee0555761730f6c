package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type UpdateValidatorListBalanceInstructionArgs struct {
	// StartIndex is the first validator list entry to update.
	StartIndex uint32

	// NoMerge skips merging transient stake back into the validator
	// stake accounts.
	NoMerge bool
}

var updateValidatorListBalanceArgsCodec = layout.Struct[UpdateValidatorListBalanceInstructionArgs](
	layout.NewField("start_index", layout.U32(), func(a *UpdateValidatorListBalanceInstructionArgs) *uint32 { return &a.StartIndex }),
	layout.NewField("no_merge", layout.Bool(), func(a *UpdateValidatorListBalanceInstructionArgs) *bool { return &a.NoMerge }),
)

type UpdateValidatorListBalanceInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ReserveStake      ed25519.PublicKey

	// ValidatorAndTransientStakePairs holds the validator stake account
	// followed by the transient stake account for each entry covered by
	// this update, in list order.
	ValidatorAndTransientStakePairs []ed25519.PublicKey
}

func NewUpdateValidatorListBalanceInstruction(
	accounts *UpdateValidatorListBalanceInstructionAccounts,
	args *UpdateValidatorListBalanceInstructionArgs,
) solana.Instruction {
	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.StakePool,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.WithdrawAuthority,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ValidatorList,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ReserveStake,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  SysvarClockAddress,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  SysvarStakeHistoryAddress,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  StakeProgramAddress,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	for _, stakeAccount := range accounts.ValidatorAndTransientStakePairs {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  stakeAccount,
			IsWritable: true,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program:  ProgramAddress,
		Data:     instructionData(InstructionTypeUpdateValidatorListBalance, updateValidatorListBalanceArgsCodec, *args),
		Accounts: metas,
	}
}
