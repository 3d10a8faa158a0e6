package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamwell/backend/internal/application/adapter"
	"github.com/dreamwell/backend/internal/domain/entity"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.EmailVerificationToken != nil && *u.EmailVerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerror.ErrTokenNotFound
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PasswordResetToken != nil && *u.PasswordResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainerror.ErrTokenNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

// fakeRefreshRepo is an in-memory RefreshTokenRepository.
type fakeRefreshRepo struct {
	tokens map[string]*entity.RefreshToken
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshRepo) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domainerror.ErrTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRefreshRepo) Save(_ context.Context, token *entity.RefreshToken) error {
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshRepo) Replace(_ context.Context, token *entity.RefreshToken) error {
	for k, t := range r.tokens {
		if t.UserID == token.UserID {
			delete(r.tokens, k)
		}
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshRepo) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for k, t := range r.tokens {
		if t.ExpiresAt.Before(cutoff) {
			delete(r.tokens, k)
			n++
		}
	}
	return n, nil
}

func (r *fakeRefreshRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range r.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

// fakePasswordService hashes with a reversible prefix so tests stay fast.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues predictable access tokens.
type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, user *entity.User) (string, error) {
	return "access-token-" + user.Email, nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.AccessClaims, error) {
	if !strings.HasPrefix(token, "access-token-") {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.AccessClaims{Email: strings.TrimPrefix(token, "access-token-")}, nil
}

// fakeEmailService records queued emails and can be made to fail.
type fakeEmailService struct {
	verification  []adapter.QueueVerificationInput
	resets        []adapter.QueuePasswordResetInput
	ticketReplies []adapter.QueueTicketReplyInput
	failWith      error
}

func (s *fakeEmailService) QueueVerificationEmail(_ context.Context, input adapter.QueueVerificationInput) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.verification = append(s.verification, input)
	return nil
}

func (s *fakeEmailService) QueuePasswordResetEmail(_ context.Context, input adapter.QueuePasswordResetInput) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.resets = append(s.resets, input)
	return nil
}

func (s *fakeEmailService) QueueTicketReplyEmail(_ context.Context, input adapter.QueueTicketReplyInput) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.ticketReplies = append(s.ticketReplies, input)
	return nil
}
