package stakepool

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

// StakePool is the pool configuration account. All balances are point
// in time values as of LastUpdateEpoch.
type StakePool struct {
	AccountType AccountType

	Manager               ed25519.PublicKey
	Staker                ed25519.PublicKey
	StakeDepositAuthority ed25519.PublicKey
	StakeWithdrawBumpSeed uint8
	ValidatorList         ed25519.PublicKey
	ReserveStake          ed25519.PublicKey
	PoolMint              ed25519.PublicKey
	ManagerFeeAccount     ed25519.PublicKey
	TokenProgramID        ed25519.PublicKey

	TotalLamports   uint64
	PoolTokenSupply uint64
	LastUpdateEpoch uint64
	Lockup          Lockup

	EpochFee     Fee
	NextEpochFee *Fee

	PreferredDepositValidatorVoteAddress  ed25519.PublicKey
	PreferredWithdrawValidatorVoteAddress ed25519.PublicKey

	StakeDepositFee        Fee
	StakeWithdrawalFee     Fee
	NextStakeWithdrawalFee *Fee
	StakeReferralFee       uint8

	SolDepositAuthority  ed25519.PublicKey
	SolDepositFee        Fee
	SolReferralFee       uint8
	SolWithdrawAuthority ed25519.PublicKey
	SolWithdrawalFee     Fee
	NextSolWithdrawalFee *Fee

	LastEpochPoolTokenSupply uint64
	LastEpochTotalLamports   uint64
}

var stakePoolCodec = layout.Struct[StakePool](
	layout.NewField("account_type", layout.Enum[AccountType](), func(p *StakePool) *AccountType { return &p.AccountType }),
	layout.NewField("manager", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.Manager }),
	layout.NewField("staker", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.Staker }),
	layout.NewField("stake_deposit_authority", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.StakeDepositAuthority }),
	layout.NewField("stake_withdraw_bump_seed", layout.U8(), func(p *StakePool) *uint8 { return &p.StakeWithdrawBumpSeed }),
	layout.NewField("validator_list", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.ValidatorList }),
	layout.NewField("reserve_stake", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.ReserveStake }),
	layout.NewField("pool_mint", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.PoolMint }),
	layout.NewField("manager_fee_account", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.ManagerFeeAccount }),
	layout.NewField("token_program_id", layout.PublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.TokenProgramID }),
	layout.NewField("total_lamports", layout.U64(), func(p *StakePool) *uint64 { return &p.TotalLamports }),
	layout.NewField("pool_token_supply", layout.U64(), func(p *StakePool) *uint64 { return &p.PoolTokenSupply }),
	layout.NewField("last_update_epoch", layout.U64(), func(p *StakePool) *uint64 { return &p.LastUpdateEpoch }),
	layout.NewField("lockup", lockupCodec, func(p *StakePool) *Lockup { return &p.Lockup }),
	layout.NewField("epoch_fee", feeCodec, func(p *StakePool) *Fee { return &p.EpochFee }),
	layout.NewField("next_epoch_fee", layout.FutureEpoch(feeCodec), func(p *StakePool) **Fee { return &p.NextEpochFee }),
	layout.NewField("preferred_deposit_validator_vote_address", layout.OptionalPublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.PreferredDepositValidatorVoteAddress }),
	layout.NewField("preferred_withdraw_validator_vote_address", layout.OptionalPublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.PreferredWithdrawValidatorVoteAddress }),
	layout.NewField("stake_deposit_fee", feeCodec, func(p *StakePool) *Fee { return &p.StakeDepositFee }),
	layout.NewField("stake_withdrawal_fee", feeCodec, func(p *StakePool) *Fee { return &p.StakeWithdrawalFee }),
	layout.NewField("next_stake_withdrawal_fee", layout.FutureEpoch(feeCodec), func(p *StakePool) **Fee { return &p.NextStakeWithdrawalFee }),
	layout.NewField("stake_referral_fee", layout.U8(), func(p *StakePool) *uint8 { return &p.StakeReferralFee }),
	layout.NewField("sol_deposit_authority", layout.OptionalPublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.SolDepositAuthority }),
	layout.NewField("sol_deposit_fee", feeCodec, func(p *StakePool) *Fee { return &p.SolDepositFee }),
	layout.NewField("sol_referral_fee", layout.U8(), func(p *StakePool) *uint8 { return &p.SolReferralFee }),
	layout.NewField("sol_withdraw_authority", layout.OptionalPublicKey(), func(p *StakePool) *ed25519.PublicKey { return &p.SolWithdrawAuthority }),
	layout.NewField("sol_withdrawal_fee", feeCodec, func(p *StakePool) *Fee { return &p.SolWithdrawalFee }),
	layout.NewField("next_sol_withdrawal_fee", layout.FutureEpoch(feeCodec), func(p *StakePool) **Fee { return &p.NextSolWithdrawalFee }),
	layout.NewField("last_epoch_pool_token_supply", layout.U64(), func(p *StakePool) *uint64 { return &p.LastEpochPoolTokenSupply }),
	layout.NewField("last_epoch_total_lamports", layout.U64(), func(p *StakePool) *uint64 { return &p.LastEpochTotalLamports }),
)

// Marshal serializes the pool config into a freshly sized buffer.
func (p StakePool) Marshal() ([]byte, error) {
	data := make([]byte, stakePoolCodec.SpanOf(p))
	if _, err := stakePoolCodec.Encode(p, data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

// Unmarshal parses a pool config account. Trailing bytes beyond the
// encoded span are ignored; pool accounts are padded on-chain.
func (p *StakePool) Unmarshal(data []byte) error {
	decoded, _, err := stakePoolCodec.Decode(data, 0)
	if err != nil {
		return errors.Wrap(ErrInvalidAccountData, err.Error())
	}
	if decoded.AccountType != AccountTypeStakePool {
		return errors.Wrapf(ErrInvalidAccountType, "type %d", decoded.AccountType)
	}

	*p = decoded
	return nil
}

func (p StakePool) String() string {
	var sb strings.Builder
	sb.WriteString("StakePool{")
	sb.WriteString(fmt.Sprintf("manager=%s", base58.Encode(p.Manager)))
	sb.WriteString(fmt.Sprintf(", staker=%s", base58.Encode(p.Staker)))
	sb.WriteString(fmt.Sprintf(", validator_list=%s", base58.Encode(p.ValidatorList)))
	sb.WriteString(fmt.Sprintf(", reserve_stake=%s", base58.Encode(p.ReserveStake)))
	sb.WriteString(fmt.Sprintf(", pool_mint=%s", base58.Encode(p.PoolMint)))
	sb.WriteString(fmt.Sprintf(", total_lamports=%d", p.TotalLamports))
	sb.WriteString(fmt.Sprintf(", pool_token_supply=%d", p.PoolTokenSupply))
	sb.WriteString(fmt.Sprintf(", last_update_epoch=%d", p.LastUpdateEpoch))
	sb.WriteString(fmt.Sprintf(", epoch_fee=%s", p.EpochFee))
	sb.WriteString("}")
	return sb.String()
}
