package stakepool

// feeTypeTag is the discriminant of the FeeType sum carried by SetFee.
type feeTypeTag uint8

const (
	feeTypeSolReferral feeTypeTag = iota
	feeTypeStakeReferral
	feeTypeEpoch
	feeTypeStakeWithdrawal
	feeTypeSolDeposit
	feeTypeStakeDeposit
	feeTypeSolWithdrawal
)

// FeeType selects which pool fee a SetFee instruction updates, together
// with the new value. Referral fees are a single percentage byte; all
// others carry a full Fee ratio.
type FeeType struct {
	tag      feeTypeTag
	fee      Fee
	referral uint8
}

func SolReferralFee(percentage uint8) FeeType {
	return FeeType{tag: feeTypeSolReferral, referral: percentage}
}

func StakeReferralFee(percentage uint8) FeeType {
	return FeeType{tag: feeTypeStakeReferral, referral: percentage}
}

func EpochFee(fee Fee) FeeType {
	return FeeType{tag: feeTypeEpoch, fee: fee}
}

func StakeWithdrawalFee(fee Fee) FeeType {
	return FeeType{tag: feeTypeStakeWithdrawal, fee: fee}
}

func SolDepositFee(fee Fee) FeeType {
	return FeeType{tag: feeTypeSolDeposit, fee: fee}
}

func StakeDepositFee(fee Fee) FeeType {
	return FeeType{tag: feeTypeStakeDeposit, fee: fee}
}

func SolWithdrawalFee(fee Fee) FeeType {
	return FeeType{tag: feeTypeSolWithdrawal, fee: fee}
}

func (t FeeType) marshal() []byte {
	switch t.tag {
	case feeTypeSolReferral, feeTypeStakeReferral:
		return []byte{byte(t.tag), t.referral}
	default:
		data := make([]byte, 1+feeCodec.Span())
		data[0] = byte(t.tag)
		if _, err := feeCodec.Encode(t.fee, data, 1); err != nil {
			panic(err)
		}
		return data
	}
}
