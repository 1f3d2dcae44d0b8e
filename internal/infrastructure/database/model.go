package database

import "time"

// ProductModel is the persistence row of a catalog item.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"size:200;not null"`
	Brand       string  `gorm:"size:100;index"`
	Category    string  `gorm:"size:100;index"`
	Size        string  `gorm:"size:20"`
	Color       string  `gorm:"size:50"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null;default:0"`
	Description string  `gorm:"type:text;default:''"`
}

// TableName maps the model to the products table.
func (ProductModel) TableName() string {
	return "products"
}

// ChatMemoryModel is the persistence row of a chat message. The
// compound index serves the per-session chronological queries.
type ChatMemoryModel struct {
	ID        int64     `gorm:"primaryKey"`
	SessionID string    `gorm:"size:100;not null;index;index:ix_chat_session_time,priority:1"`
	Role      string    `gorm:"size:20;not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"index;index:ix_chat_session_time,priority:2"`
}

// TableName maps the model to the chat_memory table.
func (ChatMemoryModel) TableName() string {
	return "chat_memory"
}

// Models lists every persisted model for schema migration.
func Models() []interface{} {
	return []interface{}{&ProductModel{}, &ChatMemoryModel{}}
}
