package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/util"
	"swift_elearning_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MailSender dipenuhi oleh MailService; kegagalan kirim hanya dicatat,
// tidak menggagalkan operasi akun.
type MailSender interface {
	SendActivationEmail(email, name, code string) error
	SendPasswordResetEmail(email, name, newPassword string) error
}

type AuthService struct {
	UserRepo  *repository.UserRepository
	AdminRepo *repository.AdminRepository
	Mailer    MailSender
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, adminRepo *repository.AdminRepository, mailer MailSender, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		AdminRepo: adminRepo,
		Mailer:    mailer,
		Cfg:       cfg,
	}
}

type PelajarRegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	RawPassword string `json:"raw_password" binding:"required"`
	AsalSekolah string `json:"asal_sekolah"`
	Jurusan     string `json:"jurusan"`
}

type MentorRegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	RawPassword string `json:"raw_password" binding:"required"`
	Keahlian    string `json:"keahlian"`
	Asal        string `json:"asal"`
}

type AdminRegisterRequest struct {
	ID          string `json:"id" binding:"required"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func activationCode() string {
	b := make([]byte, 4)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func tempPassword() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *AuthService) newUser(email, nama, rawPassword string) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &model.User{
		Email:          email,
		NamaLengkap:    nama,
		HashedPassword: string(hashed),
		ActivationCode: activationCode(),
	}, nil
}

func (s *AuthService) sendActivation(user *model.User) {
	link := fmt.Sprintf("%s/user/aktivasi?id=%d&otp=%s", s.Cfg.Server.Domain, user.ID, user.ActivationCode)
	logger.Log.Info("activation link issued", zap.Uint("user_id", user.ID), zap.String("link", link))

	if err := s.Mailer.SendActivationEmail(user.Email, user.NamaLengkap, user.ActivationCode); err != nil {
		logger.Log.Error("failed to send activation email", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func (s *AuthService) RegisterPelajar(req PelajarRegisterRequest) error {
	user, err := s.newUser(req.Email, req.NamaLengkap, req.RawPassword)
	if err != nil {
		return err
	}

	pelajar := &model.Pelajar{
		AsalSekolah: req.AsalSekolah,
		Jurusan:     req.Jurusan,
	}
	if err := s.UserRepo.CreatePelajar(user, pelajar); err != nil {
		return err
	}

	go s.sendActivation(user)
	return nil
}

func (s *AuthService) RegisterMentor(req MentorRegisterRequest) error {
	user, err := s.newUser(req.Email, req.NamaLengkap, req.RawPassword)
	if err != nil {
		return err
	}

	mentor := &model.Mentor{
		Keahlian: req.Keahlian,
	}
	if req.Asal != "" {
		mentor.Asal = &req.Asal
		mentor.IsVerified = true
	}
	if err := s.UserRepo.CreateMentor(user, mentor); err != nil {
		return err
	}

	go s.sendActivation(user)
	return nil
}

// Activate mencocokkan kode aktivasi dan menandai akun aktif.
func (s *AuthService) Activate(id uint, otp string) error {
	_, err := s.UserRepo.FindByIDAndActivationCode(id, otp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrActivationFailed
		}
		return err
	}
	return s.UserRepo.MarkActive(id)
}

// Login melayani pelajar dan mentor lewat jalur yang sama; token yang
// dihasilkan membawa id numerik user.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", util.ErrInactiveAccount
	}

	return util.GenerateToken(user.ID, s.Cfg.JWT.Secret, util.TokenExpiration)
}

// AdminLogin memakai jalur tanda tangan yang sama tetapi klaim id
// berupa string.
func (s *AuthService) AdminLogin(id, password string) (string, error) {
	admin, err := s.AdminRepo.FindByID(id)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateToken(admin.ID, s.Cfg.JWT.Secret, util.TokenExpiration)
}

// RegisterAdmin dibuat oleh admin lain; parent menjadi created_by.
func (s *AuthService) RegisterAdmin(req AdminRegisterRequest, parentID string) error {
	_, err := s.AdminRepo.FindByID(req.ID)
	if err == nil {
		return util.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.AdminRepo.Create(&model.Admin{
		ID:             req.ID,
		NamaLengkap:    req.NamaLengkap,
		HashedPassword: string(hashed),
		CreatedBy:      parentID,
	})
}

// RequestPasswordReset mengganti password dengan sandi sementara dan
// mengirimkannya lewat email.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAccountNotFound
		}
		return err
	}

	if !user.IsActive {
		return util.ErrInactiveAccount
	}

	newPassword := tempPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.UserRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		return err
	}

	go func() {
		if err := s.Mailer.SendPasswordResetEmail(user.Email, user.NamaLengkap, newPassword); err != nil {
			logger.Log.Error("failed to send password reset email", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}()
	return nil
}

// ChangePassword memverifikasi kredensial lama sebelum mengganti sandi.
func (s *AuthService) ChangePassword(email, password, newPassword string) error {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return util.ErrInvalidCredentials
	}

	if !user.IsActive {
		return util.ErrInactiveAccount
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(user.ID, string(hashed))
}
