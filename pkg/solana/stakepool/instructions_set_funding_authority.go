package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type SetFundingAuthorityInstructionArgs struct {
	FundingType FundingType
}

type SetFundingAuthorityInstructionAccounts struct {
	StakePool ed25519.PublicKey
	Manager   ed25519.PublicKey

	// NewAuthority removes the restriction when nil.
	NewAuthority ed25519.PublicKey
}

func NewSetFundingAuthorityInstruction(
	accounts *SetFundingAuthorityInstructionAccounts,
	args *SetFundingAuthorityInstructionArgs,
) solana.Instruction {
	metas := []solana.AccountMeta{
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
	}
	if len(accounts.NewAuthority) > 0 {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.NewAuthority,
			IsWritable: false,
			IsSigner:   false,
		})
	}

	return solana.Instruction{
		Program: ProgramAddress,
		Data: []byte{
			byte(InstructionTypeSetFundingAuthority),
			byte(args.FundingType),
		},
		Accounts: metas,
	}
}
