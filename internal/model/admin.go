package model

import (
	"time"

	"gorm.io/gorm"
)

// Admin memakai ruang identitas sendiri dengan id string yang dipilih
// saat pembuatan akun. CreatedBy menunjuk admin pembuatnya (kosong
// untuk admin root); relasinya berbentuk pohon, bukan siklus.
// swagger:model Admin
type Admin struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	NamaLengkap    string         `gorm:"size:255;not null" json:"nama_lengkap"`
	HashedPassword string         `gorm:"size:255;not null" json:"-"`
	CreatedBy      string         `gorm:"size:64;index" json:"created_by"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}
