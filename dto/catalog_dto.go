package dto

// 画像は multipart の "image" フィールドで受け取る。
type CreateFoodInput struct {
	Name        string  `form:"name" json:"name"`
	Description string  `form:"description" json:"description"`
	Price       float64 `form:"price" json:"price"`
	Category    string  `form:"category" json:"category"`
}

type RemoveFoodInput struct {
	ID string `json:"id"`
}

type UpdateFoodCategoryInput struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

type CreateCategoryInput struct {
	Name string `form:"name" json:"name"`
}

type CategoryIDInput struct {
	CategoryID string `form:"categoryId" json:"categoryId"`
}
