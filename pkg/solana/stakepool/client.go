package stakepool

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/solpools/stakepool-go/pkg/solana"
)

// Client provides decoded views of stake pool program accounts.
type Client struct {
	log    *logrus.Entry
	client solana.Client
}

func NewClient(client solana.Client) *Client {
	return &Client{
		log:    logrus.StandardLogger().WithField("type", "stakepool/client"),
		client: client,
	}
}

// GetStakePool fetches and decodes a pool config account.
func (c *Client) GetStakePool(address ed25519.PublicKey, commitment solana.Commitment) (*StakePool, error) {
	info, err := c.client.GetAccountInfo(address, commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake pool account")
	}

	if !bytes.Equal(info.Owner, ProgramAddress) {
		return nil, ErrInvalidProgram
	}

	var pool StakePool
	if err := pool.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &pool, nil
}

// GetValidatorList fetches and decodes a pool's validator registry.
func (c *Client) GetValidatorList(address ed25519.PublicKey, commitment solana.Commitment) (*ValidatorList, error) {
	info, err := c.client.GetAccountInfo(address, commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get validator list account")
	}

	if !bytes.Equal(info.Owner, ProgramAddress) {
		return nil, ErrInvalidProgram
	}

	var list ValidatorList
	if err := list.Unmarshal(info.Data); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetStakePools fetches every pool config account owned by the program.
// Accounts that fail to decode are reported as nil entries so one
// malformed account doesn't hide the rest.
func (c *Client) GetStakePools() (map[string]*StakePool, error) {
	accounts, err := c.client.GetProgramAccounts(ProgramAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get program accounts")
	}

	pools := make(map[string]*StakePool)
	for _, account := range accounts {
		if len(account.Account.Data) == 0 || AccountType(account.Account.Data[0]) != AccountTypeStakePool {
			continue
		}

		address := base58.Encode(account.PublicKey)

		var pool StakePool
		if err := pool.Unmarshal(account.Account.Data); err != nil {
			c.log.WithField("account", address).WithError(err).Warn("failed to unmarshal stake pool account")
			pools[address] = nil
			continue
		}

		pools[address] = &pool
	}

	return pools, nil
}
