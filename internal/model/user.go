package model

// User adalah akun dasar yang dipakai bersama oleh pelajar dan mentor.
// Sub-record (Pelajar/Mentor) menentukan peran akun.
// swagger:model User
type User struct {
	BaseModel
	Email          string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	NamaLengkap    string `gorm:"size:255;not null" json:"nama_lengkap"`
	HashedPassword string `gorm:"size:255;not null" json:"-"`
	ActivationCode string `gorm:"size:64" json:"-"`
	IsActive       bool   `gorm:"default:false" json:"is_active"`
}

func (User) TableName() string {
	return "user"
}

// Pelajar adalah sub-record siswa, primary key = user.id.
// swagger:model Pelajar
type Pelajar struct {
	UID         uint   `gorm:"primaryKey" json:"uid"`
	User        User   `gorm:"foreignKey:UID;references:ID" json:"user"`
	AsalSekolah string `gorm:"size:255" json:"asal_sekolah"`
	Jurusan     string `gorm:"size:255" json:"jurusan"`
	IsMember    bool   `gorm:"default:false" json:"is_member"`
}

func (Pelajar) TableName() string {
	return "pelajar"
}

// Mentor adalah sub-record pengajar, primary key = user.id.
// Asal bernilai null berarti mentor belum selesai onboarding dan
// belum boleh membuat konten; IsVerified menyimpan status yang sama
// secara eksplisit.
// swagger:model Mentor
type Mentor struct {
	UID        uint    `gorm:"primaryKey" json:"uid"`
	User       User    `gorm:"foreignKey:UID;references:ID" json:"user"`
	Keahlian   string  `gorm:"size:255" json:"keahlian"`
	Asal       *string `gorm:"size:255" json:"asal"`
	IsVerified bool    `gorm:"default:false" json:"is_verified"`
}

func (Mentor) TableName() string {
	return "mentor"
}
