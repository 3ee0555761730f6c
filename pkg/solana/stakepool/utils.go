package stakepool

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/solpools/stakepool-go/pkg/solana/layout"
)

func mustBase58Decode(value string) ed25519.PublicKey {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(fmt.Sprintf("invalid base58 value: %s", value))
	}
	return decoded
}

// instructionData serializes a one byte instruction discriminant
// followed by its argument block.
func instructionData[T any](t InstructionType, codec layout.Codec[T], args T) []byte {
	data := make([]byte, 1+codec.SpanOf(args))
	data[0] = byte(t)
	if _, err := codec.Encode(args, data, 1); err != nil {
		panic(fmt.Sprintf("invalid instruction args: %v", err))
	}
	return data
}

// emptyInstructionData serializes an instruction that carries no arguments.
func emptyInstructionData(t InstructionType) []byte {
	return []byte{byte(t)}
}
