package dto

type CreatePostRequest struct {
	Game        string `json:"game" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Rank        string `json:"rank"`
	Region      string `json:"region" binding:"required"`
	Description string `json:"description" binding:"required,max=200"`
}
