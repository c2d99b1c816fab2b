// internal/app/notification_service.go
package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// NotificationService delivers messages to the student's chat.
type NotificationService interface {
	// NotifyStatus sends a status message unconditionally.
	NotifyStatus(message string) error
	// NotifyError sends an error report once per distinct text until the
	// error cache is cleared.
	NotifyError(message string) error
}

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	telegramClient domainTelegram.Client
	chatID         string
	errorCache     *ErrorCache
	logger         *logrus.Entry
}

func NewNotificationServiceImpl(
	tc domainTelegram.Client,
	chatID string,
	errorCache *ErrorCache,
	logger *logrus.Entry,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		telegramClient: tc,
		chatID:         chatID,
		errorCache:     errorCache,
		logger:         logger,
	}
}

func (s *NotificationServiceImpl) NotifyStatus(message string) error {
	return s.send(message)
}

func (s *NotificationServiceImpl) NotifyError(message string) error {
	if s.errorCache.Contains(message) {
		s.logger.Debug("Error already reported, notification skipped")
		return nil
	}
	if err := s.send(message); err != nil {
		return err
	}
	s.errorCache.Add(message)
	return nil
}

func (s *NotificationServiceImpl) send(message string) error {
	if err := s.telegramClient.SendMessage(s.chatID, message, nil); err != nil {
		s.logger.WithError(err).Error("Failed to send message to the user")
		// The cause stays in the log; the returned text becomes a chat message
		// and a dedup key, so it must not vary.
		return ErrSendMessage
	}
	s.logger.Info("Message sent successfully")
	return nil
}
