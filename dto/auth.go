package dto

import "stayrooted/models"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=traveler host"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

type GoogleUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
