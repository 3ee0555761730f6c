package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type SetManagerInstructionAccounts struct {
	StakePool            ed25519.PublicKey
	Manager              ed25519.PublicKey
	NewManager           ed25519.PublicKey
	NewManagerFeeAccount ed25519.PublicKey
}

func NewSetManagerInstruction(
	accounts *SetManagerInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    emptyInstructionData(InstructionTypeSetManager),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Manager,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.NewManager,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.NewManagerFeeAccount,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
