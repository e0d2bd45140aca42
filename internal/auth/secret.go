package auth

import "crypto/subtle"

// Secret is a pre-shared password checked on every gated call. There are no
// sessions: callers resend it each time.
type Secret struct {
	plain string
	hash  string
}

// NewSecret builds a gate from a plaintext value or a bcrypt hash. The hash
// wins when both are set.
func NewSecret(plain, bcryptHash string) *Secret {
	return &Secret{plain: plain, hash: bcryptHash}
}

func (s *Secret) Configured() bool {
	return s != nil && (s.plain != "" || s.hash != "")
}

func (s *Secret) Matches(input string) bool {
	if !s.Configured() || input == "" {
		return false
	}
	if s.hash != "" {
		return ComparePassword(s.hash, input) == nil
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(s.plain)) == 1
}
