package stakepool

import (
	"crypto/ed25519"

	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

// Lockup mirrors the stake program's lockup configuration carried
// inside the pool config account.
type Lockup struct {
	UnixTimestamp int64
	Epoch         uint64
	Custodian     ed25519.PublicKey
}

var lockupCodec = layout.Struct[Lockup](
	layout.NewField("unix_timestamp", layout.I64(), func(l *Lockup) *int64 { return &l.UnixTimestamp }),
	layout.NewField("epoch", layout.U64(), func(l *Lockup) *uint64 { return &l.Epoch }),
	layout.NewField("custodian", layout.PublicKey(), func(l *Lockup) *ed25519.PublicKey { return &l.Custodian }),
)
