package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type SetStakerInstructionAccounts struct {
	StakePool ed25519.PublicKey

	// SetStakerAuthority is the current manager or staker.
	SetStakerAuthority ed25519.PublicKey
	NewStaker          ed25519.PublicKey
}

func NewSetStakerInstruction(
	accounts *SetStakerInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    emptyInstructionData(InstructionTypeSetStaker),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.SetStakerAuthority,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.NewStaker,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
