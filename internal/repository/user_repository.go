package repository

import (
	"time"

	"swift_elearning_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.DB.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var u model.User
	err := r.DB.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreatePelajar menulis baris user dan sub-record pelajar dalam satu
// transaksi supaya tidak ada akun setengah jadi.
func (r *UserRepository) CreatePelajar(user *model.User, pelajar *model.Pelajar) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		pelajar.UID = user.ID
		return tx.Omit("User").Create(pelajar).Error
	})
}

func (r *UserRepository) CreateMentor(user *model.User, mentor *model.Mentor) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		mentor.UID = user.ID
		return tx.Omit("User").Create(mentor).Error
	})
}

func (r *UserRepository) FindPelajarByUID(uid uint) (*model.Pelajar, error) {
	var p model.Pelajar
	err := r.DB.Preload("User").Where("uid = ?", uid).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) FindMentorByUID(uid uint) (*model.Mentor, error) {
	var m model.Mentor
	err := r.DB.Preload("User").Where("uid = ?", uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *UserRepository) FindByIDAndActivationCode(id uint, code string) (*model.User, error) {
	var u model.User
	err := r.DB.Where("id = ? AND activation_code = ?", id, code).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) MarkActive(id uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": true, "updated_at": time.Now()}).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).
		Update("hashed_password", hashed).Error
}

// TogglePelajarMember membalik flag is_member pelajar yang dicari lewat
// email user-nya dan mengembalikan keadaan setelah dibalik.
func (r *UserRepository) TogglePelajarMember(email string) (*model.Pelajar, error) {
	var u model.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}

	var p model.Pelajar
	if err := r.DB.Where("uid = ?", u.ID).First(&p).Error; err != nil {
		return nil, err
	}

	if err := r.DB.Model(&model.Pelajar{}).Where("uid = ?", p.UID).
		Update("is_member", !p.IsMember).Error; err != nil {
		return nil, err
	}
	p.IsMember = !p.IsMember
	return &p, nil
}
