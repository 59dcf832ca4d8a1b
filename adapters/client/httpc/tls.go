package httpc

import (
	"crypto/tls"
)

// TlsSt is built once and never mutated; every request gets its own copy of
// the derived *tls.Config.
type TlsSt struct {
	insecure bool
}

func NewTls(insecure bool) *TlsSt {
	return &TlsSt{insecure: insecure}
}

// InsecureTls skips hostname and certificate verification.
func InsecureTls() *TlsSt {
	return NewTls(true)
}

func (t *TlsSt) Insecure() bool {
	return t != nil && t.insecure
}

func (t *TlsSt) Config() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: t.Insecure(), //nolint:gosec
	}
}
