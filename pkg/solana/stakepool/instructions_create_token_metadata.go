package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type CreateTokenMetadataInstructionArgs struct {
	Name   string
	Symbol string
	URI    string
}

var createTokenMetadataArgsCodec = layout.Struct[CreateTokenMetadataInstructionArgs](
	layout.NewField("name", layout.String(), func(a *CreateTokenMetadataInstructionArgs) *string { return &a.Name }),
	layout.NewField("symbol", layout.String(), func(a *CreateTokenMetadataInstructionArgs) *string { return &a.Symbol }),
	layout.NewField("uri", layout.String(), func(a *CreateTokenMetadataInstructionArgs) *string { return &a.URI }),
)

type CreateTokenMetadataInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Manager           ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	PoolMint          ed25519.PublicKey
	Payer             ed25519.PublicKey
	TokenMetadata     ed25519.PublicKey
}

func NewCreateTokenMetadataInstruction(
	accounts *CreateTokenMetadataInstructionAccounts,
	args *CreateTokenMetadataInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeCreateTokenMetadata, createTokenMetadataArgsCodec, *args),
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
				PublicKey:  accounts.PoolMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Payer,
				IsWritable: true,
				IsSigner:   true,
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
			{
				PublicKey:  SystemProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
