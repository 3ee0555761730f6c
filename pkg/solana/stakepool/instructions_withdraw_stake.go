package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type WithdrawStakeInstructionArgs struct {
	// PoolTokens is the amount of pool tokens burned for the withdrawal.
	PoolTokens uint64
}

var withdrawStakeArgsCodec = layout.Struct[WithdrawStakeInstructionArgs](
	layout.NewField("amount", layout.U64(), func(a *WithdrawStakeInstructionArgs) *uint64 { return &a.PoolTokens }),
)

type WithdrawStakeInstructionAccounts struct {
	StakePool                 ed25519.PublicKey
	ValidatorList             ed25519.PublicKey
	WithdrawAuthority         ed25519.PublicKey
	ValidatorStake            ed25519.PublicKey
	DestinationStake          ed25519.PublicKey
	DestinationStakeAuthority ed25519.PublicKey
	SourceTransferAuthority   ed25519.PublicKey
	SourcePoolAccount         ed25519.PublicKey
	ManagerFeeAccount         ed25519.PublicKey
	PoolMint                  ed25519.PublicKey
}

func NewWithdrawStakeInstruction(
	accounts *WithdrawStakeInstructionAccounts,
	args *WithdrawStakeInstructionArgs,
) solana.Instruction {
	return solana.Instruction{
		Program: ProgramAddress,
		Data:    instructionData(InstructionTypeWithdrawStake, withdrawStakeArgsCodec, *args),
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
				PublicKey:  accounts.WithdrawAuthority,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.ValidatorStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationStake,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.DestinationStakeAuthority,
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
