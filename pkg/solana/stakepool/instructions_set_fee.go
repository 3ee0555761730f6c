package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type SetFeeInstructionArgs struct {
	Fee FeeType
}

type SetFeeInstructionAccounts struct {
	StakePool ed25519.PublicKey
	Manager   ed25519.PublicKey
}

func NewSetFeeInstruction(
	accounts *SetFeeInstructionAccounts,
	args *SetFeeInstructionArgs,
) solana.Instruction {
	data := append(
		[]byte{byte(InstructionTypeSetFee)},
		args.Fee.marshal()...,
	)

	return solana.Instruction{
		Program: ProgramAddress,
		Data:    data,
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
		},
	}
}
