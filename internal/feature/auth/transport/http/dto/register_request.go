package dto

// RegisterReq is the body of POST /auth/register.
// Password strength is checked by the usecase so that the policy message reaches the client.
type RegisterReq struct {
	Email          string `json:"email" binding:"required,email,max=255"`
	Password       string `json:"password" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}
