package stakepool

// FundingType selects which funding authority a SetFundingAuthority
// instruction updates.
type FundingType uint8

const (
	FundingTypeStakeDeposit FundingType = iota
	FundingTypeSolDeposit
	FundingTypeSolWithdraw
)

func (t FundingType) String() string {
	switch t {
	case FundingTypeStakeDeposit:
		return "stake_deposit"
	case FundingTypeSolDeposit:
		return "sol_deposit"
	case FundingTypeSolWithdraw:
		return "sol_withdraw"
	}
	return "unknown"
}
