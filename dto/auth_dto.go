package dto

import "gin-fooddelivery/models"

// 登録時の検証（メール形式・パスワード長）はサービス側で行う。メッセージの順序を保つため。
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse は互換性のため token と role をトップレベルに置く。
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	Role    models.Role `json:"role"`
}
