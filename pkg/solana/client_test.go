package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	client := New(string(EnvironmentDev))
	assert.NotNil(t, client)
}
