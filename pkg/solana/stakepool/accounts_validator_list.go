package stakepool

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

// ValidatorStakeInfoSize is the fixed wire size of one validator entry.
const ValidatorStakeInfoSize = 73

// validatorListHeaderSize covers the account type byte, the
// max_validators limit and the entry count prefix.
const validatorListHeaderSize = 1 + 4 + 4

// ValidatorStakeInfo is one entry of the validator registry.
type ValidatorStakeInfo struct {
	ActiveStakeLamports      uint64
	TransientStakeLamports   uint64
	LastUpdateEpoch          uint64
	TransientSeedSuffixStart uint64
	TransientSeedSuffixEnd   uint64
	Status                   StakeStatus
	VoteAccountAddress       ed25519.PublicKey
}

var validatorStakeInfoCodec = layout.Struct[ValidatorStakeInfo](
	layout.NewField("active_stake_lamports", layout.U64(), func(v *ValidatorStakeInfo) *uint64 { return &v.ActiveStakeLamports }),
	layout.NewField("transient_stake_lamports", layout.U64(), func(v *ValidatorStakeInfo) *uint64 { return &v.TransientStakeLamports }),
	layout.NewField("last_update_epoch", layout.U64(), func(v *ValidatorStakeInfo) *uint64 { return &v.LastUpdateEpoch }),
	layout.NewField("transient_seed_suffix_start", layout.U64(), func(v *ValidatorStakeInfo) *uint64 { return &v.TransientSeedSuffixStart }),
	layout.NewField("transient_seed_suffix_end", layout.U64(), func(v *ValidatorStakeInfo) *uint64 { return &v.TransientSeedSuffixEnd }),
	layout.NewField("status", layout.Enum[StakeStatus](), func(v *ValidatorStakeInfo) *StakeStatus { return &v.Status }),
	layout.NewField("vote_account_address", layout.PublicKey(), func(v *ValidatorStakeInfo) *ed25519.PublicKey { return &v.VoteAccountAddress }),
)

// ValidatorList is the registry of validators participating in a pool.
type ValidatorList struct {
	AccountType   AccountType
	MaxValidators uint32
	Validators    []ValidatorStakeInfo
}

var validatorListCodec = layout.Struct[ValidatorList](
	layout.NewField("account_type", layout.Enum[AccountType](), func(l *ValidatorList) *AccountType { return &l.AccountType }),
	layout.NewField("max_validators", layout.U32(), func(l *ValidatorList) *uint32 { return &l.MaxValidators }),
	layout.NewField("validators", layout.Vector(validatorStakeInfoCodec), func(l *ValidatorList) *[]ValidatorStakeInfo { return &l.Validators }),
)

// CalculateValidatorListSize returns the account size needed to hold
// maxValidators entries.
func CalculateValidatorListSize(maxValidators uint32) int {
	return validatorListHeaderSize + int(maxValidators)*ValidatorStakeInfoSize
}

// Marshal serializes the validator list without the padding present in
// an allocated on-chain account.
func (l ValidatorList) Marshal() ([]byte, error) {
	data := make([]byte, validatorListCodec.SpanOf(l))
	if _, err := validatorListCodec.Encode(l, data, 0); err != nil {
		return nil, err
	}
	return data, nil
}

// Unmarshal parses a validator list account. Unused preallocated
// entries past the count prefix are ignored.
func (l *ValidatorList) Unmarshal(data []byte) error {
	decoded, _, err := validatorListCodec.Decode(data, 0)
	if err != nil {
		return errors.Wrap(ErrInvalidAccountData, err.Error())
	}
	if decoded.AccountType != AccountTypeValidatorList {
		return errors.Wrapf(ErrInvalidAccountType, "type %d", decoded.AccountType)
	}

	*l = decoded
	return nil
}

func (l ValidatorList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ValidatorList{max_validators=%d, validators=[", l.MaxValidators))
	for i, v := range l.Validators {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf(
			"{vote=%s, status=%s, active=%d, transient=%d}",
			base58.Encode(v.VoteAccountAddress),
			v.Status,
			v.ActiveStakeLamports,
			v.TransientStakeLamports,
		))
	}
	sb.WriteString("]}")
	return sb.String()
}
