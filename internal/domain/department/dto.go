package department

import (
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *CreateDepartmentRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validator.Struct(r).Err()
}
