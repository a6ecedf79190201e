package explorers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/explink/common"
)

func TestValidate(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"https://etherscan.io/address/0xabc", "https://etherscan.io/address/0xabc"},
		{"  https://tzkt.io/ooZ2\n", "https://tzkt.io/ooZ2"},
		{"https://simpleledger.info/#tx/62b2", "https://simpleledger.info/#tx/62b2"},
		{"https://opensea.io/assets?search[query]=0xc4df", "https://opensea.io/assets?search[query]=0xc4df"},
		{"https://tzkt.io/tz1/operations/", "https://tzkt.io/tz1/operations/"},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Validate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{
		"",
		"etherscan.io/address/0xabc",
		"https:///address/0xabc",
		"https://etherscan.io",
		"https://etherscan.io//address/0xabc",
		"https://etherscan.io/address//0xabc",
		"http://[::1/address",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := Validate(in)
			assert.ErrorIs(t, err, common.ErrMalformedURL)
		})
	}
}
