package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Maristella28/Bms-111925/model"
	userrepo "github.com/Maristella28/Bms-111925/repository/user"
	"github.com/Maristella28/Bms-111925/util/hash"
)

type mockRepo struct {
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	createFn  func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func TestRegister_Success(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			require.Equal(t, "resident", u.Role)
			require.NotEqual(t, "secret123", u.PasswordHash, "password must be hashed")
			u.ID = 42
			return nil
		},
	}
	s := New(m, "test-secret")

	u, token, err := s.Register(context.Background(), model.RegisterReq{
		FirstName: "Juan", LastName: "Dela Cruz",
		Email: "juan@example.com", Username: "juandc", Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
	require.NotEmpty(t, token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			}
		},
	}
	s := New(m, "test-secret")

	_, _, err := s.Register(context.Background(), model.RegisterReq{
		FirstName: "Juan", LastName: "Dela Cruz",
		Email: "juan@example.com", Username: "juandc", Password: "secret123",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_username_key",
			}
		},
	}
	s := New(m, "test-secret")

	_, _, err := s.Register(context.Background(), model.RegisterReq{
		FirstName: "Juan", LastName: "Dela Cruz",
		Email: "juan@example.com", Username: "juandc", Password: "secret123",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_OtherDBErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error { return boom },
	}
	s := New(m, "test-secret")

	_, _, err := s.Register(context.Background(), model.RegisterReq{
		FirstName: "Juan", LastName: "Dela Cruz",
		Email: "juan@example.com", Username: "juandc", Password: "secret123",
	})
	require.ErrorIs(t, err, boom)
}

func TestLogin_Success(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID: 42, Email: email, Role: "admin",
				PasswordHash: mustHash(t, "secret123"),
			}, nil
		},
	}
	s := New(m, "test-secret")

	u, token, err := s.Login(context.Background(), model.LoginReq{
		Email: "admin@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
	require.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: 42, PasswordHash: mustHash(t, "secret123")}, nil
		},
	}
	s := New(m, "test-secret")

	_, _, err := s.Login(context.Background(), model.LoginReq{
		Email: "admin@example.com", Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, errors.New("no rows")
		},
	}
	s := New(m, "test-secret")

	_, _, err := s.Login(context.Background(), model.LoginReq{
		Email: "nobody@example.com", Password: "secret123",
	})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
