package config

// KeyProvider supplies token signing material. New tokens are signed with
// the current key; verification tries every key in the ring, so rotating
// the secret does not invalidate outstanding tokens.
type KeyProvider interface {
	SigningKey() []byte
	VerificationKeys() [][]byte
}

type staticKeyProvider struct {
	current []byte
	ring    [][]byte
}

// NewStaticKeyProvider builds a provider from the current secret and any
// retired ones still accepted for verification.
func NewStaticKeyProvider(current string, previous ...string) KeyProvider {
	ring := make([][]byte, 0, len(previous)+1)
	ring = append(ring, []byte(current))
	for _, p := range previous {
		ring = append(ring, []byte(p))
	}
	return &staticKeyProvider{current: []byte(current), ring: ring}
}

func (p *staticKeyProvider) SigningKey() []byte {
	return p.current
}

func (p *staticKeyProvider) VerificationKeys() [][]byte {
	return p.ring
}
