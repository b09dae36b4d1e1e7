package bits

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackMSBFirst(t *testing.T) {
	buf, err := Pack("1000000000000001" + "11111111")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x01, 0xff}, buf)
}

func TestPackRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	for n := 0; n < 50; n++ {
		var sb strings.Builder
		for i := 0; i < 8*r.Intn(40); i++ {
			if r.Intn(2) == 0 {
				sb.WriteByte('0')
			} else {
				sb.WriteByte('1')
			}
		}
		s := String(sb.String())
		buf, err := Pack(s)
		require.NoError(t, err)
		assert.Equal(t, s, Unpack(buf))
	}
}

func TestPackMisaligned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.core")
	defer teardown()
	//
	_, err := Pack("101")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.MisalignedBitLength))
	assert.Equal(t, core.EALIGN, core.Code(err))
	assert.Panics(t, func() { MustPack("1") })
}

func TestPackInvalidBit(t *testing.T) {
	_, err := Pack("0101x101")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBit))
}

func TestConvertPolarity(t *testing.T) {
	s := String("0011")
	assert.Equal(t, String("1100"), Convert(s, FontPolarity, OutputPolarity))
	assert.Equal(t, String("1100"), Convert(s, OutputPolarity, FontPolarity))
	assert.Equal(t, s, Convert(s, OutputPolarity, OutputPolarity))
	assert.Equal(t, s, Convert(Convert(s, FontPolarity, OutputPolarity), OutputPolarity, FontPolarity))
}

func TestRuns(t *testing.T) {
	s := Runs(Run{White, 3}, Run{Black, 0}, Run{Black, 2}, Run{White, -4}, Run{White, 1})
	assert.Equal(t, String("111001"), s)
	assert.Equal(t, String("0000"), Repeat(Black, 4))
	assert.Equal(t, String(""), Repeat(White, -1))
}
