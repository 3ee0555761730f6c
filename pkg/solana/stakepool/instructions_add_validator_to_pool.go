package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type AddValidatorToPoolInstructionArgs struct {
	// Seed of the validator stake account; zero derives the canonical
	// address.
	Seed uint32
}

var addValidatorToPoolArgsCodec = layout.Struct[AddValidatorToPoolInstructionArgs](
	layout.NewField("seed", layout.U32(), func(a *AddValidatorToPoolInstructionArgs) *uint32 { return &a.Seed }),
)

type AddValidatorToPoolInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Staker            ed25519.PublicKey
	ReserveStake      ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ValidatorStake    ed25519.PublicKey
	ValidatorVote     ed25519.PublicKey
}

func NewAddValidatorToPoolInstruction(
	accounts *AddValidatorToPoolInstructionAccounts,
	args *AddValidatorToPoolInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeAddValidatorToPool, addValidatorToPoolArgsCodec, *args),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Staker,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.ReserveStake,
				IsWritable: true,
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
				PublicKey:  accounts.ValidatorStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorVote,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SysvarRentAddress,
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
