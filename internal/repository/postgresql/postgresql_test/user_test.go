package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func createTestUser(t *testing.T, ctx context.Context, repo user.UserRepository, name, email string, role user.Role, departmentID *int64) user.User {
	t.Helper()
	u, err := repo.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: strPtr("$2a$10$hash"),
		Role:         role,
		DepartmentID: departmentID,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)
	departments := postgresql.NewDepartmentRepository(setup.DB)

	eng, err := departments.Create(ctx, "Engineering")
	require.NoError(t, err)

	created := createTestUser(t, ctx, users, "Dewi", "dewi@example.com", user.RoleEmployee, &eng.ID)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.DepartmentName)
	assert.Equal(t, "Engineering", *created.DepartmentName)

	byEmail, err := users.GetByEmail(ctx, "dewi@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, user.RoleEmployee, byEmail.Role)

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dewi", byID.Name)

	exists, err := users.ExistsByEmail(ctx, "dewi@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = users.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_CreateConstraintErrors(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)

	createTestUser(t, ctx, users, "Dewi", "dewi@example.com", user.RoleEmployee, nil)

	_, err := users.Create(ctx, user.User{Name: "Dewi 2", Email: "dewi@example.com", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	missing := int64(999)
	_, err = users.Create(ctx, user.User{Name: "Oka", Email: "oka@example.com", Role: user.RoleEmployee, DepartmentID: &missing})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestUserRepository_ListAndLinkGoogle(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(setup.DB)

	createTestUser(t, ctx, users, "Budi", "budi@example.com", user.RoleEmployee, nil)
	createTestUser(t, ctx, users, "Ana", "ana@example.com", user.RoleAdmin, nil)

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)

	linked, err := users.LinkGoogleAccount(ctx, "google-1", "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, linked.OAuthProviderID)
	assert.Equal(t, "google-1", *linked.OAuthProviderID)
}

func TestDepartmentRepository(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	departments := postgresql.NewDepartmentRepository(setup.DB)

	first, err := departments.FindOrCreate(ctx, "Finance")
	require.NoError(t, err)
	again, err := departments.FindOrCreate(ctx, "Finance")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = departments.Create(ctx, "Finance")
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)

	_, err = departments.GetByID(ctx, first.ID+100)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	list, err := departments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
