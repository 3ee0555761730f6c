package stakepool

import (
	"crypto/ed25519"
	"fmt"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type SetPreferredValidatorInstructionArgs struct {
	ValidatorType PreferredValidatorType

	// ValidatorVoteAddress clears the preference when nil.
	ValidatorVoteAddress ed25519.PublicKey
}

type SetPreferredValidatorInstructionAccounts struct {
	StakePool     ed25519.PublicKey
	Staker        ed25519.PublicKey
	ValidatorList ed25519.PublicKey
}

func NewSetPreferredValidatorInstruction(
	accounts *SetPreferredValidatorInstructionAccounts,
	args *SetPreferredValidatorInstructionArgs,
) solana.Instruction {
	voteCodec := layout.OptionalPublicKey()

	data := make([]byte, 2+voteCodec.SpanOf(args.ValidatorVoteAddress))
	data[0] = byte(InstructionTypeSetPreferredValidator)
	data[1] = byte(args.ValidatorType)
	if _, err := voteCodec.Encode(args.ValidatorVoteAddress, data, 2); err != nil {
		panic(fmt.Sprintf("invalid instruction args: %v", err))
	}

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
				PublicKey:  accounts.Staker,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.ValidatorList,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
