package service

import (
	"errors"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/util"

	"gorm.io/gorm"
)

type MentorStore interface {
	FindMentorByUID(uid uint) (*model.Mentor, error)
}

type AdminStore interface {
	FindByID(id string) (*model.Admin, error)
}

// AuthzService memusatkan pemeriksaan peran dan kepemilikan yang
// dipakai endpoint khusus mentor/admin.
type AuthzService struct {
	Mentors MentorStore
	Admins  AdminStore
}

func NewAuthzService(mentors MentorStore, admins AdminStore) *AuthzService {
	return &AuthzService{Mentors: mentors, Admins: admins}
}

// RequireMentor memastikan principal adalah mentor yang sudah
// terverifikasi. Asal yang masih null berarti mentor belum selesai
// onboarding dan ditolak.
func (s *AuthzService) RequireMentor(uid uint) (*model.Mentor, error) {
	m, err := s.Mentors.FindMentorByUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, err
	}
	if m.Asal == nil {
		return nil, util.ErrNotMentor
	}
	return m, nil
}

// RequireOwner menolak mutasi atas resource milik mentor lain.
func (s *AuthzService) RequireOwner(creatorID, uid uint) error {
	if creatorID != uid {
		return util.ErrNotOwner
	}
	return nil
}

// RequireAdmin mencari admin berdasarkan id token; tidak ditemukan
// berarti token tidak mewakili admin yang sah.
func (s *AuthzService) RequireAdmin(id string) (*model.Admin, error) {
	a, err := s.Admins.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidAdmin
		}
		return nil, err
	}
	return a, nil
}
