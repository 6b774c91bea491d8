package models

import "github.com/shopspring/decimal"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductImage struct {
	ID       int64  `json:"id"`
	ImageUrl string `json:"imageUrl"`
}

type ProductFile struct {
	ID       int64  `json:"id"`
	FileUrl  string `json:"fileUrl"`
	FileType string `json:"fileType"`
}

type Product struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Category     *Category       `json:"category,omitempty"`
	Stock        int             `json:"stock"`
	Material     string          `json:"material"`
	Dimensions   string          `json:"dimensions"`
	Weight       decimal.Decimal `json:"weight"`
	MainImageUrl string          `json:"mainImageUrl"`
	Images       []ProductImage  `json:"images,omitempty"`
	Files        []ProductFile   `json:"files,omitempty"`
	CreatedAt    Timestamp       `json:"createdAt"`
	UpdatedAt    Timestamp       `json:"updatedAt"`
}

// ProductInput is the payload for product create/update in the back office.
type ProductInput struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Currency     string          `json:"currency"`
	Category     *Category       `json:"category,omitempty"`
	Stock        int             `json:"stock"`
	Material     string          `json:"material"`
	Dimensions   string          `json:"dimensions"`
	MainImageUrl string          `json:"mainImageUrl"`
}
