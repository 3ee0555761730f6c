package stakepool

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/solpools/stakepool-go/pkg/solana"
)

const (
	withdrawAuthoritySeed = "withdraw"
	depositAuthoritySeed  = "deposit"
	transientStakeSeed    = "transient"
	ephemeralStakeSeed    = "ephemeral"
	metadataSeed          = "metadata"
)

// FindWithdrawAuthorityAddress derives the pool's withdraw authority,
// which owns all of the pool's stake accounts.
func FindWithdrawAuthorityAddress(pool ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		ProgramAddress,
		pool,
		[]byte(withdrawAuthoritySeed),
	)
}

// FindDepositAuthorityAddress derives the default stake deposit
// authority for a pool that permits permissionless deposits.
func FindDepositAuthorityAddress(pool ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		ProgramAddress,
		pool,
		[]byte(depositAuthoritySeed),
	)
}

// FindValidatorStakeAddress derives the pool's active stake account
// for a validator. A zero seed derives the canonical address.
func FindValidatorStakeAddress(voteAccount, pool ed25519.PublicKey, seed uint32) (ed25519.PublicKey, error) {
	seeds := [][]byte{
		voteAccount,
		pool,
	}
	if seed != 0 {
		var suffix [4]byte
		binary.LittleEndian.PutUint32(suffix[:], seed)
		seeds = append(seeds, suffix[:])
	}
	return solana.FindProgramAddress(ProgramAddress, seeds...)
}

// FindTransientStakeAddress derives the stake account used while
// activating or deactivating stake for a validator.
func FindTransientStakeAddress(voteAccount, pool ed25519.PublicKey, seed uint64) (ed25519.PublicKey, error) {
	var suffix [8]byte
	binary.LittleEndian.PutUint64(suffix[:], seed)
	return solana.FindProgramAddress(
		ProgramAddress,
		[]byte(transientStakeSeed),
		voteAccount,
		pool,
		suffix[:],
	)
}

// FindEphemeralStakeAddress derives the short-lived stake account used
// by the additional stake instructions.
func FindEphemeralStakeAddress(pool ed25519.PublicKey, seed uint64) (ed25519.PublicKey, error) {
	var suffix [8]byte
	binary.LittleEndian.PutUint64(suffix[:], seed)
	return solana.FindProgramAddress(
		ProgramAddress,
		[]byte(ephemeralStakeSeed),
		pool,
		suffix[:],
	)
}

// FindMetadataAddress derives the token metadata account for the pool
// mint under the metadata program.
func FindMetadataAddress(mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	return solana.FindProgramAddress(
		MetadataProgramAddress,
		[]byte(metadataSeed),
		MetadataProgramAddress,
		mint,
	)
}
