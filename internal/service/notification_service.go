package service

import (
	"strings"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"gorm.io/gorm"
)

// NotificationService manages announcements shown to candidates. New
// notifications are also pushed over the schedule hub so connected clients
// see them without polling.
type NotificationService struct {
	Notifications *repository.NotificationRepository
	Hub           *ScheduleHub
}

func NewNotificationService(notifications *repository.NotificationRepository, hub *ScheduleHub) *NotificationService {
	return &NotificationService{Notifications: notifications, Hub: hub}
}

type NotificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

func (s *NotificationService) Create(req NotificationRequest) (*model.Notification, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, util.MissingFieldErr("title")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, util.MissingFieldErr("message")
	}

	audience := req.Audience
	if audience == "" {
		audience = "all"
	}

	n := &model.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Audience: audience,
		Active:   true,
	}
	if err := s.Notifications.Create(n); err != nil {
		return nil, util.UpstreamErr("failed to create notification", err)
	}

	if s.Hub != nil {
		s.Hub.Publish(ScheduleEvent{Type: EventNotification, Payload: n})
	}
	return n, nil
}

func (s *NotificationService) Deactivate(id uint) (*model.Notification, error) {
	n, err := s.Notifications.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("notification not found")
		}
		return nil, util.UpstreamErr("failed to load notification", err)
	}

	n.Active = false
	if err := s.Notifications.Save(n); err != nil {
		return nil, util.UpstreamErr("failed to update notification", err)
	}
	return n, nil
}

func (s *NotificationService) Delete(id uint) error {
	if _, err := s.Notifications.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.NotFoundErr("notification not found")
		}
		return util.UpstreamErr("failed to load notification", err)
	}
	if err := s.Notifications.Delete(id); err != nil {
		return util.UpstreamErr("failed to delete notification", err)
	}
	return nil
}

func (s *NotificationService) ListActive() ([]model.Notification, error) {
	ns, err := s.Notifications.ListActive()
	if err != nil {
		return nil, util.UpstreamErr("failed to list notifications", err)
	}
	return ns, nil
}

func (s *NotificationService) ListAll() ([]model.Notification, error) {
	ns, err := s.Notifications.ListAll()
	if err != nil {
		return nil, util.UpstreamErr("failed to list notifications", err)
	}
	return ns, nil
}
