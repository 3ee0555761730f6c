package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type IncreaseAdditionalValidatorStakeInstructionArgs struct {
	Lamports           uint64
	TransientStakeSeed uint64
	EphemeralStakeSeed uint64
}

var increaseAdditionalValidatorStakeArgsCodec = layout.Struct[IncreaseAdditionalValidatorStakeInstructionArgs](
	layout.NewField("lamports", layout.U64(), func(a *IncreaseAdditionalValidatorStakeInstructionArgs) *uint64 { return &a.Lamports }),
	layout.NewField("transient_stake_seed", layout.U64(), func(a *IncreaseAdditionalValidatorStakeInstructionArgs) *uint64 { return &a.TransientStakeSeed }),
	layout.NewField("ephemeral_stake_seed", layout.U64(), func(a *IncreaseAdditionalValidatorStakeInstructionArgs) *uint64 { return &a.EphemeralStakeSeed }),
)

type IncreaseAdditionalValidatorStakeInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Staker            ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ReserveStake      ed25519.PublicKey
	EphemeralStake    ed25519.PublicKey
	TransientStake    ed25519.PublicKey
	ValidatorStake    ed25519.PublicKey
	ValidatorVote     ed25519.PublicKey
}

func NewIncreaseAdditionalValidatorStakeInstruction(
	accounts *IncreaseAdditionalValidatorStakeInstructionAccounts,
	args *IncreaseAdditionalValidatorStakeInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeIncreaseAdditionalValidatorStake, increaseAdditionalValidatorStakeArgsCodec, *args),
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
				PublicKey:  accounts.ReserveStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.EphemeralStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TransientStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorStake,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorVote,
				IsWritable: false,
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
				PublicKey:  StakeConfigAddress,
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
