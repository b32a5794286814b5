package app

import "time"

type App struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	Href        string    `gorm:"column:href;not null"`
	MinRole     string    `gorm:"column:min_role;not null;default:employee"`
	SortOrder   int       `gorm:"column:sort_order;default:0"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (App) TableName() string {
	return "mst_apps"
}
