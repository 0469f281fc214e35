package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
}
