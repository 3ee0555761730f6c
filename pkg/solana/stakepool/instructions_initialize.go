package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana"
	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

type InitializeInstructionArgs struct {
	EpochFee      Fee
	WithdrawalFee Fee
	DepositFee    Fee
	ReferralFee   uint8
	MaxValidators uint32
}

var initializeArgsCodec = layout.Struct[InitializeInstructionArgs](
	layout.NewField("epoch_fee", feeCodec, func(a *InitializeInstructionArgs) *Fee { return &a.EpochFee }),
	layout.NewField("withdrawal_fee", feeCodec, func(a *InitializeInstructionArgs) *Fee { return &a.WithdrawalFee }),
	layout.NewField("deposit_fee", feeCodec, func(a *InitializeInstructionArgs) *Fee { return &a.DepositFee }),
	layout.NewField("referral_fee", layout.U8(), func(a *InitializeInstructionArgs) *uint8 { return &a.ReferralFee }),
	layout.NewField("max_validators", layout.U32(), func(a *InitializeInstructionArgs) *uint32 { return &a.MaxValidators }),
)

type InitializeInstructionAccounts struct {
	StakePool         ed25519.PublicKey
	Manager           ed25519.PublicKey
	Staker            ed25519.PublicKey
	WithdrawAuthority ed25519.PublicKey
	ValidatorList     ed25519.PublicKey
	ReserveStake      ed25519.PublicKey
	PoolMint          ed25519.PublicKey
	ManagerFeeAccount ed25519.PublicKey

	// DepositAuthority restricts stake deposits when set.
	DepositAuthority ed25519.PublicKey
}

func NewInitializeInstruction(
	accounts *InitializeInstructionAccounts,
	args *InitializeInstructionArgs,
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
		{
			PublicKey:  accounts.Staker,
			IsWritable: false,
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
			PublicKey:  accounts.PoolMint,
			IsWritable: true,
			IsSigner:   false,
		},
		{
			PublicKey:  accounts.ManagerFeeAccount,
			IsWritable: true,
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
		Data:     instructionData(InstructionTypeInitialize, initializeArgsCodec, *args),
		Accounts: metas,
	}
}
