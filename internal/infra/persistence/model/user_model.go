// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

// UserModel mirrors the 'usuarios' table. The store assigns ids via the
// auto-increment primary key; email carries the unique index that backs the
// registration race guard.
type UserModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:nome;type:varchar(100);not null"`
	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:senha;type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
