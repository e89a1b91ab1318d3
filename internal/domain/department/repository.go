package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	Create(ctx context.Context, name string) (Department, error)
	// FindOrCreate returns the department with the given name, inserting it when missing
	FindOrCreate(ctx context.Context, name string) (Department, error)
}
