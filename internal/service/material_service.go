package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaterialService manages study material uploads. PDFs go straight to
// object storage; videos are spooled to a temp file first so ffprobe can
// read the duration.
type MaterialService struct {
	Materials *repository.MaterialRepository
	Payments  *PaymentService
	Storage   *StorageService
	Logger    *zap.Logger
}

func NewMaterialService(materials *repository.MaterialRepository, payments *PaymentService, storage *StorageService, logger *zap.Logger) *MaterialService {
	return &MaterialService{Materials: materials, Payments: payments, Storage: storage, Logger: logger}
}

type MaterialUpload struct {
	Title     string
	ExamTitle string
	Paid      bool
	File      *multipart.FileHeader
}

func materialKind(filename string) (string, string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return model.MaterialPDF, "application/pdf", nil
	case ".mp4":
		return model.MaterialVideo, "video/mp4", nil
	case ".webm":
		return model.MaterialVideo, "video/webm", nil
	case ".mkv":
		return model.MaterialVideo, "video/x-matroska", nil
	default:
		return "", "", util.InvalidFormatErr("only pdf and video files are accepted")
	}
}

func (s *MaterialService) Upload(ctx context.Context, up MaterialUpload) (*model.StudyMaterial, error) {
	if strings.TrimSpace(up.Title) == "" {
		return nil, util.MissingFieldErr("title")
	}
	if strings.TrimSpace(up.ExamTitle) == "" {
		return nil, util.MissingFieldErr("examTitle")
	}
	if up.File == nil {
		return nil, util.MissingFieldErr("file")
	}

	kind, contentType, err := materialKind(up.File.Filename)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("materials/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(up.File.Filename)))

	m := &model.StudyMaterial{
		Title:     up.Title,
		Kind:      kind,
		ExamTitle: up.ExamTitle,
		ObjectKey: key,
		SizeBytes: up.File.Size,
		Paid:      up.Paid,
	}

	src, err := up.File.Open()
	if err != nil {
		return nil, util.UpstreamErr("failed to read upload", err)
	}
	defer src.Close()

	if kind == model.MaterialVideo {
		tmp, err := os.CreateTemp("", "material-*"+filepath.Ext(up.File.Filename))
		if err != nil {
			return nil, util.UpstreamErr("failed to spool video", err)
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.ReadFrom(src); err != nil {
			tmp.Close()
			return nil, util.UpstreamErr("failed to spool video", err)
		}
		tmp.Close()

		if info, err := util.GetVideoInfo(tmp.Name()); err != nil {
			s.Logger.Warn("video probe failed", zap.String("file", up.File.Filename), zap.Error(err))
		} else {
			m.DurationSec = info.Duration
		}

		url, err := s.Storage.UploadFile(ctx, key, tmp.Name(), contentType)
		if err != nil {
			return nil, util.UpstreamErr("failed to store video", err)
		}
		m.URL = url
	} else {
		url, err := s.Storage.Upload(ctx, key, src, up.File.Size, contentType)
		if err != nil {
			return nil, util.UpstreamErr("failed to store file", err)
		}
		m.URL = url
	}

	if err := s.Materials.Create(m); err != nil {
		return nil, util.UpstreamErr("failed to record material", err)
	}
	return m, nil
}

// ListForCandidate returns an exam's materials, withholding URLs of paid
// items unless the registration has a captured payment.
func (s *MaterialService) ListForCandidate(examTitle, registrationNumber string) ([]model.StudyMaterial, error) {
	ms, err := s.Materials.ListByExam(examTitle)
	if err != nil {
		return nil, util.UpstreamErr("failed to list materials", err)
	}

	paid := false
	if registrationNumber != "" {
		paid, err = s.Payments.HasPaid(registrationNumber, examTitle)
		if err != nil {
			return nil, err
		}
	}

	for i := range ms {
		if ms[i].Paid && !paid {
			ms[i].URL = ""
		}
	}
	return ms, nil
}

func (s *MaterialService) ListAll() ([]model.StudyMaterial, error) {
	ms, err := s.Materials.ListAll()
	if err != nil {
		return nil, util.UpstreamErr("failed to list materials", err)
	}
	return ms, nil
}

// Delete removes the record and then the stored object. A storage miss is
// logged and swallowed; the record is already gone.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	m, err := s.Materials.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.NotFoundErr("material not found")
		}
		return util.UpstreamErr("failed to load material", err)
	}

	if err := s.Materials.Delete(id); err != nil {
		return util.UpstreamErr("failed to delete material", err)
	}

	if err := s.Storage.Delete(ctx, m.ObjectKey); err != nil {
		s.Logger.Warn("failed to delete stored object",
			zap.String("key", m.ObjectKey), zap.Error(err))
	}
	return nil
}
