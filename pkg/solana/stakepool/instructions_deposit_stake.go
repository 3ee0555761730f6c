package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
)

type DepositStakeInstructionAccounts struct {
	StakePool              ed25519.PublicKey
	ValidatorList          ed25519.PublicKey
	DepositAuthority       ed25519.PublicKey
	WithdrawAuthority      ed25519.PublicKey
	DepositStake           ed25519.PublicKey
	ValidatorStake         ed25519.PublicKey
	ReserveStake           ed25519.PublicKey
	DestinationPoolAccount ed25519.PublicKey
	ManagerFeeAccount      ed25519.PublicKey
	ReferralPoolAccount    ed25519.PublicKey
	PoolMint               ed25519.PublicKey
}

func NewDepositStakeInstruction(
	accounts *DepositStakeInstructionAccounts,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    emptyInstructionData(InstructionTypeDepositStake),
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.StakePool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorList,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DepositAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.WithdrawAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DepositStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ReserveStake,
				IsWritable: true,
				IsSigner:   false,
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
				PublicKey:  TokenProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  StakeProgramAddress,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
