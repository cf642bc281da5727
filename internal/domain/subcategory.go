package domain

import "time"

// Subcategory описывает подкатегорию внутри категории
type Subcategory struct {
	ID          int64
	CategoryID  int64
	Name        string
	Description string
	CreatedAt   time.Time
}

func NewSubcategory(categoryID int64, name, description string) *Subcategory {
	return &Subcategory{
		CategoryID:  categoryID,
		Name:        name,
		Description: description,
	}
}
