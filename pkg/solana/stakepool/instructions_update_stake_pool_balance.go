package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type UpdateStakePoolBalanceInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ReserveStake      ed25519.PublicKey
	ManagerFeeAccount ed25519.PublicKey
	PoolMint          ed25519.PublicKey
}

func NewUpdateStakePoolBalanceInstruction(
	accounts *UpdateStakePoolBalanceInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    emptyInstructionData(InstructionTypeUpdateStakePoolBalance),
		Accounts: []solana.AccountMeta{
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
				PublicKey:  accounts.ValidatorList,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ReserveStake,
				IsWritable: false,
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
				PublicKey:  TokenProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
