package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/materials/internal/entity"
)

// Register creates a self-service account. Self-registered users are
// always employees.
func (s *Service) Register(ctx context.Context, in entity.NewUser) (entity.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if err := ValidateName(in.Name); err != nil {
		return entity.User{}, "", err
	}

	if err := ValidateEmail(in.Email); err != nil {
		return entity.User{}, "", err
	}

	if err := ValidatePassword(in.Password); err != nil {
		return entity.User{}, "", err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return entity.User{}, "", err
	}

	user, err := s.repo.CreateUser(ctx, entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         entity.RoleEmployee,
	})
	if err != nil {
		return entity.User{}, "", fmt.Errorf("register %s: %w", in.Email, err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return entity.User{}, "", err
	}

	slog.InfoContext(ctx, "user registered", "new_user_id", user.ID)

	return user, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, "", entity.ErrInvalidCredentials
		}

		return entity.User{}, "", fmt.Errorf("get user %s: %w", email, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		slog.WarnContext(ctx, "wrong password", "email", email)
		return entity.User{}, "", entity.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return entity.User{}, "", err
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to a session. The user is reloaded so
// that role changes and deletions take effect before the token expires.
func (s *Service) Authenticate(ctx context.Context, token string) (entity.Session, error) {
	var claims entity.UserClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return entity.Session{}, fmt.Errorf("%w: %w", entity.ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.ID == "" {
		return entity.Session{}, entity.ErrInvalidToken
	}

	revoked, err := s.repo.TokenRevoked(ctx, claims.ID)
	if err != nil {
		return entity.Session{}, fmt.Errorf("check token %s: %w", claims.ID, err)
	}

	if revoked {
		return entity.Session{}, fmt.Errorf("%w: token was revoked", entity.ErrInvalidToken)
	}

	user, err := s.repo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Session{}, fmt.Errorf("%w: user %d no longer exists", entity.ErrInvalidToken, claims.UserID)
		}

		return entity.Session{}, fmt.Errorf("get user %d: %w", claims.UserID, err)
	}

	return entity.Session{
		User:      user,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the token of the current session. Other tokens of the same
// user stay valid.
func (s *Service) Logout(ctx context.Context) error {
	sess, err := entity.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	if sess.TokenID == "" {
		return entity.ErrUnauthorized
	}

	err = s.repo.RevokeToken(ctx, entity.RevokedToken{
		ID:        sess.TokenID,
		UserID:    sess.User.ID,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("revoke token %s: %w", sess.TokenID, err)
	}

	slog.InfoContext(ctx, "user logged out")

	return nil
}

func (s *Service) issueToken(user entity.User) (string, error) {
	now := s.now()

	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("token id: %w", err)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.UserClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.JWTTTL)),
		},
	}).SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// EnsureAdmin creates the first admin account when no user with email
// exists yet. It is a no-op on every later start.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return nil
	}

	_, err := s.repo.UserByEmail(ctx, email)
	if err == nil {
		return nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("get user %s: %w", email, err)
	}

	if err := validateNewAccount(name, email, password, entity.RoleAdmin); err != nil {
		return err
	}

	if password == "" {
		return invalid(entity.ErrPasswordTooShort)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user, err := s.repo.CreateUser(ctx, entity.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}

	slog.InfoContext(ctx, "bootstrap admin created", "new_user_id", user.ID)

	return nil
}
