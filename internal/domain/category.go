package domain

import "time"

// Category описывает категорию товаров
type Category struct {
	ID            int64
	Name          string
	Description   string
	CreatedAt     time.Time
	Subcategories []Subcategory
}

func NewCategory(name, description string) *Category {
	return &Category{
		Name:        name,
		Description: description,
	}
}
