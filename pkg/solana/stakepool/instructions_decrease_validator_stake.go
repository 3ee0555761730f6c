package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type DecreaseValidatorStakeInstructionArgs struct {
	Lamports           uint64
	TransientStakeSeed uint64
}

var decreaseValidatorStakeArgsCodec = layout.Struct[DecreaseValidatorStakeInstructionArgs](
	layout.NewField("lamports", layout.U64(), func(a *DecreaseValidatorStakeInstructionArgs) *uint64 { return &a.Lamports }),
	layout.NewField("transient_stake_seed", layout.U64(), func(a *DecreaseValidatorStakeInstructionArgs) *uint64 { return &a.TransientStakeSeed }),
)

type DecreaseValidatorStakeInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Staker            ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ValidatorStake    ed25519.PublicKey
	TransientStake    ed25519.PublicKey
}

func NewDecreaseValidatorStakeInstruction(
	accounts *DecreaseValidatorStakeInstructionAccounts,
	args *DecreaseValidatorStakeInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeDecreaseValidatorStake, decreaseValidatorStakeArgsCodec, *args),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Staker,
				IsWritable: false,
				IsSigner:   true,
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
				PublicKey:  accounts.ValidatorStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TransientStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SysvarClockAddress,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SysvarRentAddress,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SystemProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  StakeProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
