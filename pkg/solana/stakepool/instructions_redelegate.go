package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type RedelegateInstructionArgs struct {
	Lamports                      uint64
	SourceTransientStakeSeed      uint64
	EphemeralStakeSeed            uint64
	DestinationTransientStakeSeed uint64
}

var redelegateArgsCodec = layout.Struct[RedelegateInstructionArgs](
	layout.NewField("lamports", layout.U64(), func(a *RedelegateInstructionArgs) *uint64 { return &a.Lamports }),
	layout.NewField("source_transient_stake_seed", layout.U64(), func(a *RedelegateInstructionArgs) *uint64 { return &a.SourceTransientStakeSeed }),
	layout.NewField("ephemeral_stake_seed", layout.U64(), func(a *RedelegateInstructionArgs) *uint64 { return &a.EphemeralStakeSeed }),
	layout.NewField("destination_transient_stake_seed", layout.U64(), func(a *RedelegateInstructionArgs) *uint64 { return &a.DestinationTransientStakeSeed }),
)

type RedelegateInstructionAccounts struct {
	StakePool                 ed25519.PublicKey
	Staker                    ed25519.PublicKey
	WithdrawAuthority         ed25519.PublicKey
	ValidatorList             ed25519.PublicKey
	SourceValidatorStake      ed25519.PublicKey
	SourceTransientStake      ed25519.PublicKey
	EphemeralStake            ed25519.PublicKey
	DestinationTransientStake ed25519.PublicKey
	DestinationValidatorStake ed25519.PublicKey
	DestinationValidatorVote  ed25519.PublicKey
}

func NewRedelegateInstruction(
	accounts *RedelegateInstructionAccounts,
	args *RedelegateInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeRedelegate, redelegateArgsCodec, *args),
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
				PublicKey:  accounts.SourceValidatorStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SourceTransientStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.EphemeralStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationTransientStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationValidatorStake,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationValidatorVote,
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
