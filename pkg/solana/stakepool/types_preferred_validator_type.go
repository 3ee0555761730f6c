package stakepool

// PreferredValidatorType selects which preferred validator a
// SetPreferredValidator instruction updates.
type PreferredValidatorType uint8

const (
	PreferredValidatorTypeDeposit PreferredValidatorType = iota
	PreferredValidatorTypeWithdraw
)

func (t PreferredValidatorType) String() string {
	switch t {
	case PreferredValidatorTypeDeposit:
		return "deposit"
	case PreferredValidatorTypeWithdraw:
		return "withdraw"
	}
	return "unknown"
}
