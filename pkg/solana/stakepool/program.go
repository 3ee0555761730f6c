package stakepool

import (
	"github.com/pkg/errors"
)

// ProgramAddress is the address of the SPL stake pool program.
var ProgramAddress = mustBase58Decode("SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy")

// Well-known programs and sysvars referenced by stake pool instructions.
var (
	SystemProgramAddress      = mustBase58Decode("11111111111111111111111111111111")
	TokenProgramAddress       = mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	StakeProgramAddress       = mustBase58Decode("Stake11111111111111111111111111111111111111")
	StakeConfigAddress        = mustBase58Decode("StakeConfig11111111111111111111111111111111")
	MetadataProgramAddress    = mustBase58Decode("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	SysvarClockAddress        = mustBase58Decode("SysvarC1ock11111111111111111111111111111111")
	SysvarRentAddress         = mustBase58Decode("SysvarRent111111111111111111111111111111111")
	SysvarStakeHistoryAddress = mustBase58Decode("SysvarStakeHistory1111111111111111111111111")
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidAccountType     = errors.New("unexpected account type")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

// AccountType tags the first byte of every stake pool program account.
type AccountType uint8

const (
	AccountTypeUninitialized AccountType = iota
	AccountTypeStakePool
	AccountTypeValidatorList
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeUninitialized:
		return "uninitialized"
	case AccountTypeStakePool:
		return "stake_pool"
	case AccountTypeValidatorList:
		return "validator_list"
	}
	return "unknown"
}
