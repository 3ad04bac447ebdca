package constants

// トークンを運ぶリクエストヘッダー（Bearer形式ではない）
const TokenHeader = "token"

// 管理者作成エンドポイント用のヘッダー
const SetupKeyHeader = "setup-key"

// 注文ステータス
const (
	OrderStatusProcessing = "Food Processing"
	OrderStatusDelivery   = "Out for delivery"
	OrderStatusDelivered  = "Delivered"
)

// 失敗コード
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeForbidden    = "FORBIDDEN"
)

// エラーメッセージ
const (
	ErrUnexpected    = "Error"
	ErrInvalidInput  = "Invalid input"
	ErrNotAuthorized = "Not Authorized Login Again"
	ErrLoginAgain    = "Access denied. Please login again."
	ErrNoPermission  = "Access denied. You do not have permission to access this resource."

	ErrUserExists       = "User already exists"
	ErrUserNotExist     = "User does not exist"
	ErrUserNotFound     = "User not found"
	ErrInvalidCreds     = "Invalid credentials"
	ErrInvalidEmail     = "Please enter a valid email"
	ErrWeakPassword     = "Please enter a strong password"
	ErrAdminFieldsEmpty = "Name and password are required to create new admin"
	ErrInvalidSetupKey  = "Invalid setup key"
	ErrCreateAdmin      = "Error creating admin"

	ErrCategoryNameRequired = "Category name is required"
	ErrCategoryExists       = "Category already exists"
	ErrCategoryNotFound     = "Category not found"
	ErrCategoryIDRequired   = "Category ID is required"
	ErrImageRequired        = "Image is required"
	ErrFetchCategories      = "Error fetching categories"
	ErrAddCategory          = "Error adding category"
	ErrUpdateCategoryImage  = "Error updating category image"
	ErrDeleteCategory       = "Error deleting category"

	ErrFoodNotFound     = "Food not found"
	ErrFoodNameRequired = "Food name is required"
	ErrInvalidPrice     = "Price must be a positive number"

	ErrOrderNotFound  = "Order not found"
	ErrEmptyOrder     = "Order has no items"
	ErrInvalidAmount  = "Order amount must be positive"
	ErrInvalidStatus  = "Invalid order status"
	ErrItemIDRequired = "Item ID is required"
)

// 最小パスワード長
const MinPasswordLength = 8
