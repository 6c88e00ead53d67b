// Package dto defines the request bodies for the auth endpoints.
package dto

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}
