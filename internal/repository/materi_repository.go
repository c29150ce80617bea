package repository

import (
	"swift_elearning_backend/internal/model"

	"gorm.io/gorm"
)

type MateriRepository struct {
	DB *gorm.DB
}

func NewMateriRepository(db *gorm.DB) *MateriRepository {
	return &MateriRepository{DB: db}
}

func (r *MateriRepository) Create(materi *model.MateriPembelajaran) error {
	return r.DB.Create(materi).Error
}

func (r *MateriRepository) FindByID(id uint) (*model.MateriPembelajaran, error) {
	var m model.MateriPembelajaran
	err := r.DB.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MateriRepository) FindByNama(nama string) (*model.MateriPembelajaran, error) {
	var m model.MateriPembelajaran
	err := r.DB.Where("nama = ?", nama).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MateriRepository) List(mapel model.MapelSkolastik) ([]model.MateriPembelajaran, error) {
	var ms []model.MateriPembelajaran
	query := r.DB.Model(&model.MateriPembelajaran{})
	if mapel.Valid() {
		query = query.Where("mapel = ?", mapel)
	}
	err := query.Order("created_at desc").Find(&ms).Error
	return ms, err
}
