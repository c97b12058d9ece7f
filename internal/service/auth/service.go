package auth

import (
	"context"
	"errors"

	"github.com/gestionahr/gestion-backend-go/internal/domain/auth"
	"github.com/gestionahr/gestion-backend-go/internal/domain/employee"
	"github.com/gestionahr/gestion-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.Service. An unknown code and a wrong password are
// indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		IsAdmin:      emp.IsAdmin,
	}, nil
}
