package httpc

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsSt_GetMergedWith(t *testing.T) {
	base := OptionsSt{
		Tls:           InsecureTls(),
		Headers:       DefaultGetHeaders(),
		Proxy:         "http://proxy:3128",
		Timeout:       5 * time.Second,
		LogPrefix:     "base: ",
		RetryCount:    3,
		RetryInterval: time.Second,
	}

	t.Run("empty keeps base", func(t *testing.T) {
		assert.Equal(t, base, base.GetMergedWith(OptionsSt{}))
	})

	t.Run("overrides", func(t *testing.T) {
		got := base.GetMergedWith(OptionsSt{
			Tls:        NewTls(false),
			Headers:    http.Header{"X-Test": {"1"}},
			Proxy:      "https://other:443",
			LogPrefix:  "call: ",
			RetryCount: 7,
		})

		assert.False(t, got.Tls.Insecure())
		assert.Equal(t, http.Header{"X-Test": {"1"}}, got.Headers)
		assert.Equal(t, "https://other:443", got.Proxy)
		assert.Equal(t, "call: ", got.LogPrefix)
		assert.Equal(t, 7, got.RetryCount)
		assert.Equal(t, time.Second, got.RetryInterval)
	})

	t.Run("resets", func(t *testing.T) {
		got := base.GetMergedWith(OptionsSt{
			Proxy:         "-",
			LogPrefix:     "-",
			Timeout:       -1,
			RetryCount:    -1,
			RetryInterval: -1,
		})

		assert.Empty(t, got.Proxy)
		assert.Empty(t, got.LogPrefix)
		assert.Zero(t, got.Timeout)
		assert.Zero(t, got.RetryCount)
		assert.Zero(t, got.RetryInterval)
	})
}

func TestTlsSt(t *testing.T) {
	assert.True(t, InsecureTls().Config().InsecureSkipVerify)
	assert.False(t, NewTls(false).Config().InsecureSkipVerify)

	var nilTls *TlsSt
	assert.False(t, nilTls.Insecure())
}
