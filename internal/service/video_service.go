package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"swift_elearning_backend/internal/model"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/util"
	"swift_elearning_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	presignTTL      = time.Hour
	presignCacheTTL = 50 * time.Minute
)

type VideoService struct {
	Repo      *repository.VideoRepository
	Materi    MateriStore
	TugasRepo *repository.TugasRepository
	Storage   *StorageService
	Redis     *redis.Client
}

func NewVideoService(repo *repository.VideoRepository, materi MateriStore, tugasRepo *repository.TugasRepository, storage *StorageService, rdb *redis.Client) *VideoService {
	return &VideoService{
		Repo:      repo,
		Materi:    materi,
		TugasRepo: tugasRepo,
		Storage:   storage,
		Redis:     rdb,
	}
}

// UploadVideo mengunggah file mp4 yang sudah lolos pemeriksaan tipe dan
// ukuran di lapisan HTTP. File di-probe durasinya lalu dikirim ke
// object storage; baris video baru ditulis setelah upload berhasil.
func (s *VideoService) UploadVideo(ctx context.Context, creatorID uint, judul string, materiID uint, tmpPath string, size int64) (*model.VideoPembelajaran, error) {
	if _, err := s.Materi.FindByID(materiID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriNotFound
		}
		return nil, err
	}

	durasi := 0.0
	if info, err := util.GetVideoInfo(tmpPath); err != nil {
		logger.Log.Warn("video probe failed, storing without duration", zap.Error(err))
	} else {
		durasi = info.Duration
	}

	key := fmt.Sprintf("video/%d/%s.mp4", creatorID, uuid.New().String())

	f, err := os.Open(tmpPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := s.Storage.Upload(ctx, key, f, size, util.MimeVideoMP4); err != nil {
		return nil, err
	}

	video := &model.VideoPembelajaran{
		Judul:       judul,
		ObjectKey:   key,
		DurasiDetik: durasi,
		CreatorID:   creatorID,
		MateriID:    materiID,
	}
	if err := s.Repo.Create(video); err != nil {
		s.Storage.Delete(ctx, key)
		return nil, err
	}
	return video, nil
}

func (s *VideoService) GetVideo(id uint) (*model.VideoPembelajaran, error) {
	v, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrVideoNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *VideoService) ListByMateri(materiID uint) ([]model.VideoPembelajaran, error) {
	return s.Repo.ListByMateri(materiID)
}

// WatchURL mengembalikan presigned URL untuk menonton video. URL
// di-cache di redis sedikit lebih pendek dari masa berlakunya supaya
// cache tidak pernah menyajikan URL kedaluwarsa.
func (s *VideoService) WatchURL(ctx context.Context, videoID uint) (string, error) {
	video, err := s.GetVideo(videoID)
	if err != nil {
		return "", err
	}

	cacheKey := fmt.Sprintf("video_url:%d", videoID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	url, err := s.Storage.PresignedURL(ctx, video.ObjectKey, presignTTL)
	if err != nil {
		return "", err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, cacheKey, url, presignCacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache presigned url", zap.Error(err))
		}
	}
	return url, nil
}

// DeleteVideo menghapus video beserta tugas yang menempel padanya;
// tugas dibongkar lebih dulu supaya tidak ada tugas yatim.
func (s *VideoService) DeleteVideo(ctx context.Context, id uint) error {
	video, err := s.GetVideo(id)
	if err != nil {
		return err
	}

	if video.IDTugas != nil {
		if err := s.TugasRepo.DeleteCascade(*video.IDTugas); err != nil {
			return err
		}
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}

	if err := s.Storage.Delete(ctx, video.ObjectKey); err != nil {
		logger.Log.Error("failed to delete video object", zap.String("key", video.ObjectKey), zap.Error(err))
	}
	if s.Redis != nil {
		s.Redis.Del(ctx, fmt.Sprintf("video_url:%d", id))
	}
	return nil
}
