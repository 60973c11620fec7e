package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ksistemasccd-bit/iso-quote-craft/internal/application/dto"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/entity"
	"github.com/ksistemasccd-bit/iso-quote-craft/internal/domain/repository"
	"github.com/ksistemasccd-bit/iso-quote-craft/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación de asesores: registro y login.
type AuthUseCase struct {
	advisorRepo repository.AdvisorRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(advisorRepo repository.AdvisorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{advisorRepo: advisorRepo, jwtCfg: jwtCfg}
}

// RegisterAdvisor crea un asesor: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el email ya está registrado.
func (uc *AuthUseCase) RegisterAdvisor(in dto.CreateAdvisorRequest) (*dto.AdvisorResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.advisorRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	advisor := &entity.Advisor{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.advisorRepo.Create(advisor); err != nil {
		return nil, err
	}
	return toAdvisorResponse(advisor), nil
}

// Login verifica email/password, genera JWT y retorna token + asesor.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	advisor, err := uc.advisorRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if advisor == nil {
		return nil, domain.ErrAdvisorNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(advisor.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, advisor.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Advisor: *toAdvisorResponse(advisor),
	}, nil
}

func toAdvisorResponse(a *entity.Advisor) *dto.AdvisorResponse {
	if a == nil {
		return nil
	}
	return &dto.AdvisorResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Phone: a.Phone,
	}
}
