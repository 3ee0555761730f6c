package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type DepositSolInstructionArgs struct {
	Lamports uint64
}

var depositSolArgsCodec = layout.Struct[DepositSolInstructionArgs](
	layout.NewField("amount", layout.U64(), func(a *DepositSolInstructionArgs) *uint64 { return &a.Lamports }),
)

type DepositSolInstructionAccounts struct {
	StakePool              ed25519.PublicKey
	WithdrawAuthority      ed25519.PublicKey
	ReserveStake           ed25519.PublicKey
	FundingAccount         ed25519.PublicKey
	DestinationPoolAccount ed25519.PublicKey
	ManagerFeeAccount      ed25519.PublicKey
	ReferralPoolAccount    ed25519.PublicKey
	PoolMint               ed25519.PublicKey

	// DepositAuthority must sign when the pool restricts SOL deposits.
	DepositAuthority ed25519.PublicKey
}

func NewDepositSolInstruction(
	accounts *DepositSolInstructionAccounts,
	args *DepositSolInstructionArgs,
) solana.Instruction {
	metas := []solana.AccountMeta{
		{
			PublicKey:  accounts.StakePool,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.WithdrawAuthority,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ReserveStake,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.FundingAccount,
			IsWritable: true,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.DestinationPoolAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ManagerFeeAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ReferralPoolAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.PoolMint,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  SystemProgramAddress,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  TokenProgramAddress,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	if len(accounts.DepositAuthority) > 0 {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.DepositAuthority,
			IsWritable: false,
			IsSigner:   true,
		})
	}

	return solana.Instruction{
		Program:  ProgramAddress,
		Data:     instructionData(InstructionTypeDepositSol, depositSolArgsCodec, *args),
		Accounts: metas,
	}
}
