package models

type Category struct {
	ID   uint64 `gorm:"primarykey;column:category_id" json:"category_id"`
	Name string `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
}
