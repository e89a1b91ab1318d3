package fixtures

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryDepartments struct {
	department.DepartmentRepository
	byName map[string]department.Department
}

func (m *memoryDepartments) FindOrCreate(ctx context.Context, name string) (department.Department, error) {
	if d, ok := m.byName[name]; ok {
		return d, nil
	}
	d := department.Department{ID: int64(len(m.byName) + 1), Name: name}
	m.byName[name] = d
	return d, nil
}

type memoryUsers struct {
	user.UserRepository
	byEmail map[string]user.User
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryUsers) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = int64(len(m.byEmail) + 1)
	m.byEmail[u.Email] = u
	return u, nil
}

func TestSeed_IsIdempotent(t *testing.T) {
	departments := &memoryDepartments{byName: map[string]department.Department{}}
	users := &memoryUsers{byEmail: map[string]user.User{}}
	admin := AdminAccount{Name: "Administrator", Email: "admin@example.com", Password: "supersecret", Department: "Executive"}

	first, err := Seed(context.Background(), departments, users, admin)
	require.NoError(t, err)
	assert.True(t, first.AdminCreated)
	assert.Len(t, first.DepartmentIDs, len(GetDefaultDepartments()))

	stored := users.byEmail["admin@example.com"]
	assert.Equal(t, user.RoleAdmin, stored.Role)
	require.NotNil(t, stored.DepartmentID)
	assert.Equal(t, first.DepartmentIDs["Executive"], *stored.DepartmentID)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("supersecret")))

	second, err := Seed(context.Background(), departments, users, admin)
	require.NoError(t, err)
	assert.False(t, second.AdminCreated)
	assert.Equal(t, first.AdminID, second.AdminID)
	assert.Equal(t, first.DepartmentIDs, second.DepartmentIDs)
	assert.Len(t, users.byEmail, 1)
}

func TestSeed_WithoutAdmin(t *testing.T) {
	departments := &memoryDepartments{byName: map[string]department.Department{}}
	users := &memoryUsers{byEmail: map[string]user.User{}}

	seeded, err := Seed(context.Background(), departments, users, AdminAccount{})
	require.NoError(t, err)
	assert.Zero(t, seeded.AdminID)
	assert.Empty(t, users.byEmail)
}

func TestSeed_RejectsShortPassword(t *testing.T) {
	departments := &memoryDepartments{byName: map[string]department.Department{}}
	users := &memoryUsers{byEmail: map[string]user.User{}}

	_, err := Seed(context.Background(), departments, users, AdminAccount{Email: "admin@example.com", Password: "short"})
	assert.Error(t, err)
}
