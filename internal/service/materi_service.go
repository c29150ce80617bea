package service

import (
	"errors"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

type MateriStore interface {
	Create(materi *model.MateriPembelajaran) error
	FindByID(id uint) (*model.MateriPembelajaran, error)
	FindByNama(nama string) (*model.MateriPembelajaran, error)
	List(mapel model.MapelSkolastik) ([]model.MateriPembelajaran, error)
}

type MateriService struct {
	Repo MateriStore
}

func NewMateriService(repo MateriStore) *MateriService {
	return &MateriService{Repo: repo}
}

type MateriRequest struct {
	Nama  string               `json:"nama" binding:"required"`
	Mapel model.MapelSkolastik `json:"mapel" binding:"required"`
}

// CreateMateri menolak nama duplikat; nama materi unik secara global.
func (s *MateriService) CreateMateri(req MateriRequest) (*model.MateriPembelajaran, error) {
	if !req.Mapel.Valid() {
		return nil, util.ErrInvalidMapel
	}

	_, err := s.Repo.FindByNama(req.Nama)
	if err == nil {
		return nil, util.ErrMateriExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	materi := &model.MateriPembelajaran{
		Nama:  req.Nama,
		Mapel: req.Mapel,
	}
	if err := s.Repo.Create(materi); err != nil {
		return nil, err
	}
	return materi, nil
}

func (s *MateriService) GetMateri(id uint) (*model.MateriPembelajaran, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MateriService) ListMateri(mapel model.MapelSkolastik) ([]model.MateriPembelajaran, error) {
	return s.Repo.List(mapel)
}
