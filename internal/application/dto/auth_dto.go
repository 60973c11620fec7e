package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos del asesor autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Advisor AdvisorResponse `json:"advisor"`
}
