package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type CleanupRemovedValidatorEntriesInstructionAccounts struct {
	StakePool     ed25519.PublicKey
	ValidatorList ed25519.PublicKey
}

func NewCleanupRemovedValidatorEntriesInstruction(
	accounts *CleanupRemovedValidatorEntriesInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    emptyInstructionData(InstructionTypeCleanupRemovedValidatorEntries),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorList,
				IsWritable: true,
				IsSigner:   false,
			},
		},
	}
}
