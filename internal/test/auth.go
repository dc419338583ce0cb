package test

import (
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	pkgAuth "github.com/polkiloo/tigercart/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied secret.
func (h HasherStub) Hash(secret string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(secret)
	}
	return "hash:" + secret, nil
}

// Compare validates secret against stored hash.
func (h HasherStub) Compare(hash string, secret string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, secret)
	}
	if hash != "hash:"+secret {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues tokens of the form "token:<subject>".
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token:" + subject, nil
}

// ParseToken reverses IssueToken.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	subject, ok := strings.CutPrefix(token, "token:")
	if !ok || subject == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return subject, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	ID      string
	Err     error
	ParseFn func(string) (string, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.ID, nil
}

// AdminVerifierStub accepts a single operator token.
type AdminVerifierStub struct {
	Token string
	Err   error
}

// VerifyAdmin compares the token with the configured one.
func (s AdminVerifierStub) VerifyAdmin(token string) error {
	if token == "" || token != s.Token {
		if s.Err != nil {
			return s.Err
		}
		return domainErrors.ErrNotAuthorized
	}
	return nil
}

var (
	_ pkgAuth.SecretHasher = HasherStub{}
	_ pkgAuth.Strategy     = StrategyStub{}
)
