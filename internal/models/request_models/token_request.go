package request_models

type TokenRequest struct {
	Password string `json:"password" binding:"required"`
}
