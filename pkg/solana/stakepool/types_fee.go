package stakepool

import (
	"fmt"

	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

// Fee is a ratio applied to a pool amount. A zero denominator is
// serialized as-is; whether it is meaningful is a program level concern.
type Fee struct {
	Denominator uint64
	Numerator   uint64
}

func (f Fee) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// The on-chain encoding puts the denominator first.
var feeCodec = layout.Struct[Fee](
	layout.NewField("denominator", layout.U64(), func(f *Fee) *uint64 { return &f.Denominator }),
	layout.NewField("numerator", layout.U64(), func(f *Fee) *uint64 { return &f.Numerator }),
)
