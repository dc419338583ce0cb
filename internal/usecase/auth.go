package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
	pkgAuth "github.com/polkiloo/tigercart/internal/pkg/auth"
)

// AuthUseCase handles CAS login and session token management.
type AuthUseCase struct {
	users     repository.UserRepository
	cas       TicketValidator
	tokens    pkgAuth.Strategy
	hasher    pkgAuth.SecretHasher
	adminHash string
}

// NewAuthUseCase constructs AuthUseCase. An empty adminHash disables admin access.
func NewAuthUseCase(users repository.UserRepository, cas TicketValidator, strategy pkgAuth.Strategy, hasher pkgAuth.SecretHasher, adminHash string) *AuthUseCase {
	return &AuthUseCase{users: users, cas: cas, tokens: strategy, hasher: hasher, adminHash: adminHash}
}

// LoginURL returns the CAS page the browser is sent to.
func (u *AuthUseCase) LoginURL(service string) string {
	return u.cas.LoginURL(service)
}

// Login validates a CAS ticket, records the user on first visit and issues a session token.
func (u *AuthUseCase) Login(ctx context.Context, service, ticket string) (*model.User, string, error) {
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		return nil, "", domainErrors.ErrInvalidTicket
	}

	netID, err := u.cas.Validate(ctx, service, ticket)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Ensure(ctx, netID)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the username from a session token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// VerifyAdmin checks an operator token against the configured hash.
func (u *AuthUseCase) VerifyAdmin(token string) error {
	if u.adminHash == "" || token == "" {
		return domainErrors.ErrNotAuthorized
	}
	if err := u.hasher.Compare(u.adminHash, token); err != nil {
		return domainErrors.ErrNotAuthorized
	}
	return nil
}
