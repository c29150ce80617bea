package repository

import (
	"swift_elearning_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(video *model.VideoPembelajaran) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByID(id uint) (*model.VideoPembelajaran, error) {
	var v model.VideoPembelajaran
	err := r.DB.Preload("Materi").First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) ListByMateri(materiID uint) ([]model.VideoPembelajaran, error) {
	var vs []model.VideoPembelajaran
	err := r.DB.Where("materi_id = ?", materiID).Order("created_at desc").Find(&vs).Error
	return vs, err
}

// Delete menghapus video; tugas yang menempel harus sudah dicabut oleh
// pemanggil (lewat TugasRepository.DeleteCascade) supaya tidak ada
// tugas yatim.
func (r *VideoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.VideoPembelajaran{}, id).Error
}
