package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type UpdateTokenMetadataInstructionArgs struct {
	Name   string
	Symbol string
	URI    string
}

var updateTokenMetadataArgsCodec = layout.Struct[UpdateTokenMetadataInstructionArgs](
	layout.NewField("name", layout.String(), func(a *UpdateTokenMetadataInstructionArgs) *string { return &a.Name }),
	layout.NewField("symbol", layout.String(), func(a *UpdateTokenMetadataInstructionArgs) *string { return &a.Symbol }),
	layout.NewField("uri", layout.String(), func(a *UpdateTokenMetadataInstructionArgs) *string { return &a.URI }),
)

type UpdateTokenMetadataInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Manager           ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	TokenMetadata     ed25519.PublicKey
}

func NewUpdateTokenMetadataInstruction(
	accounts *UpdateTokenMetadataInstructionAccounts,
	args *UpdateTokenMetadataInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeUpdateTokenMetadata, updateTokenMetadataArgsCodec, *args),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Manager,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.WithdrawAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TokenMetadata,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  MetadataProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
