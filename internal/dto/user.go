package dto

type RegisterRequest struct {
	Login      string `json:"login"`
	Password   string `json:"pswd"`
	AdminToken string `json:"token"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"pswd"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	Login string `json:"login"`
}

type MeResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}
