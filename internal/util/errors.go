package util

import "errors"

var (
	// token / kredensial
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrInvalidAdmin       = errors.New("invalid user id")

	// otorisasi
	ErrAccountNotFound = errors.New("account not found")
	ErrNotMentor       = errors.New("akun bukan mentor terverifikasi")
	ErrNotOwner        = errors.New("bukan pemilik resource ini")

	// akun
	ErrUserExists       = errors.New("user already exists")
	ErrActivationFailed = errors.New("kode aktivasi tidak cocok")

	// katalog
	ErrInvalidMapel   = errors.New("mapel tidak valid")
	ErrMateriExists   = errors.New("materi dengan nama tersebut sudah ada")
	ErrMateriNotFound = errors.New("materi pembelajaran tidak ditemukan")
	ErrVideoNotFound  = errors.New("video pembelajaran tidak ditemukan")

	// tugas & penilaian
	ErrTugasExists          = errors.New("video sudah memiliki tugas")
	ErrNoTugasOnVideo       = errors.New("video belum memiliki tugas")
	ErrTugasNotFound        = errors.New("tugas pembelajaran tidak ditemukan")
	ErrTugasDetached        = errors.New("tugas tidak terhubung dengan video manapun")
	ErrMaxAttemptReached    = errors.New("max attempt reached")
	ErrAnswerLengthMismatch = errors.New("length mismatch")
	ErrInvalidSoal          = errors.New("definisi soal tidak valid")
)
