package models

type Category struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`

	// Deleting a category detaches its posts instead of failing the delete.
	Posts []Post `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
