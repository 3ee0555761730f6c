package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type WithdrawSolInstructionArgs struct {
	// PoolTokens is the amount of pool tokens burned for the withdrawal.
	PoolTokens uint64
}

var withdrawSolArgsCodec = layout.Struct[WithdrawSolInstructionArgs](
	layout.NewField("amount", layout.U64(), func(a *WithdrawSolInstructionArgs) *uint64 { return &a.PoolTokens }),
)

type WithdrawSolInstructionAccounts struct {
	StakePool                ed25519.PublicKey
	WithdrawAuthority        ed25519.PublicKey
	SourceTransferAuthority  ed25519.PublicKey
	SourcePoolAccount        ed25519.PublicKey
	ReserveStake             ed25519.PublicKey
	DestinationSystemAccount ed25519.PublicKey
	ManagerFeeAccount        ed25519.PublicKey
	PoolMint                 ed25519.PublicKey

	// SolWithdrawAuthority must sign when the pool restricts SOL
	// withdrawals.
	SolWithdrawAuthority ed25519.PublicKey
}

func NewWithdrawSolInstruction(
	accounts *WithdrawSolInstructionAccounts,
	args *WithdrawSolInstructionArgs,
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
			PublicKey:  accounts.SourceTransferAuthority,
			IsWritable: false,
			IsSigner:   true,
		},
		{
			PublicKey:  accounts.SourcePoolAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ReserveStake,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.DestinationSystemAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ManagerFeeAccount,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.PoolMint,
			IsWritable: true,
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
			PublicKey:  StakeProgramAddress,
			IsWritable: false,
			IsSigner:   false,
		},
		{
			PublicKey:  TokenProgramAddress,
			IsWritable: false,
			IsSigner:   false,
		},
	}
	if len(accounts.SolWithdrawAuthority) > 0 {
		metas = append(metas, solana.AccountMeta{
			PublicKey:  accounts.SolWithdrawAuthority,
			IsWritable: false,
			IsSigner:   true,
		})
	}

	return solana.Instruction{
		Program:  ProgramAddress,
		Data:     instructionData(InstructionTypeWithdrawSol, withdrawSolArgsCodec, *args),
		Accounts: metas,
	}
}
