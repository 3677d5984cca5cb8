package category

type Category struct {
	ID   int64  `gorm:"column:category_id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "category"
}
