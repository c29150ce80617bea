package database

import (
	"fmt"
	"log"

	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Pelajar{},
		&model.Mentor{},
		&model.Admin{},
		&model.MateriPembelajaran{},
		&model.VideoPembelajaran{},
		&model.TugasPembelajaran{},
		&model.Soal{},
		&model.PilihanJawaban{},
		&model.AttemptMengerjakanTugas{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// SeedRootAdmin membuat admin root pertama ketika tabel admin masih
// kosong. Admin berikutnya dibuat lewat endpoint register oleh admin
// yang sudah ada.
func SeedRootAdmin(db *gorm.DB, boot *config.AdminBootstrap) error {
	if boot.RootID == "" || boot.RootPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(boot.RootPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := boot.RootName
	if name == "" {
		name = "Root Admin"
	}

	root := &model.Admin{
		ID:             boot.RootID,
		NamaLengkap:    name,
		HashedPassword: string(hashed),
	}
	if err := db.Create(root).Error; err != nil {
		return err
	}

	log.Printf("Seeded root admin %q", boot.RootID)
	return nil
}
