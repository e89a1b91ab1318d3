package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// DEFAULT DEPARTMENTS
// ==========================================

// GetDefaultDepartments returns the departments created for a fresh install
func GetDefaultDepartments() []string {
	return []string{
		"Executive",
		"Human Resources",
		"Finance",
		"Engineering",
		"Operations",
		"Marketing",
	}
}

// ==========================================
// FIRST ADMINISTRATOR
// ==========================================

// AdminAccount describes the administrator created by the seeder
type AdminAccount struct {
	Name       string
	Email      string
	Password   string
	Department string
}

// SeededData holds what Seed created or found
type SeededData struct {
	// Department IDs by name
	DepartmentIDs map[string]int64

	AdminID      int64
	AdminCreated bool
}

// Seed creates the default departments and, when admin.Email is set, the
// first administrator. Running it again changes nothing.
func Seed(ctx context.Context, departments department.DepartmentRepository, users user.UserRepository, admin AdminAccount) (*SeededData, error) {
	seeded := &SeededData{DepartmentIDs: make(map[string]int64)}

	for _, name := range GetDefaultDepartments() {
		d, err := departments.FindOrCreate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("seed department %q: %w", name, err)
		}
		seeded.DepartmentIDs[d.Name] = d.ID
	}

	if admin.Email == "" {
		slog.Warn("SEED_ADMIN_EMAIL not set, skipping administrator")
		return seeded, nil
	}

	existing, err := users.GetByEmail(ctx, admin.Email)
	switch {
	case err == nil:
		seeded.AdminID = existing.ID
		return seeded, nil
	case !errors.Is(err, user.ErrUserNotFound):
		return nil, fmt.Errorf("look up administrator: %w", err)
	}

	if len(admin.Password) < 8 {
		return nil, fmt.Errorf("administrator password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash administrator password: %w", err)
	}
	hashed := string(hash)

	newAdmin := user.User{
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: &hashed,
		Role:         user.RoleAdmin,
	}
	if id, ok := seeded.DepartmentIDs[admin.Department]; ok {
		newAdmin.DepartmentID = &id
	}

	created, err := users.Create(ctx, newAdmin)
	if err != nil {
		return nil, fmt.Errorf("create administrator: %w", err)
	}
	seeded.AdminID = created.ID
	seeded.AdminCreated = true
	return seeded, nil
}
