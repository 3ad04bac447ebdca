package dto

// Response は全APIで共通のレスポンス形式。
// 業務上の失敗も HTTP 200 + success:false で返す。
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Code    string      `json:"code,omitempty"`
}
