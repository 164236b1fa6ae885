package shell

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iceinvein/bootleg-msn/internal/host"
)

// settingsKey is the fixed key of the notification settings document.
const settingsKey = "settings"

// previewPlaceholder replaces the body when previews are disabled.
const previewPlaceholder = "New message"

// NotificationType is the closed set of notification kinds the shell
// routes on.
type NotificationType string

const (
	NotificationMessage        NotificationType = "message"
	NotificationContactRequest NotificationType = "contact_request"
	NotificationGroupInvite    NotificationType = "group_invite"
)

// UI events emitted on the primary window by click routing.
const (
	EventShowContactRequests = "show-contact-requests"
	EventShowGroupInvites    = "show-group-invites"
)

// NotificationSettings controls whether and how notifications show.
type NotificationSettings struct {
	Enabled             bool    `json:"enabled"`
	SoundEnabled        bool    `json:"sound_enabled"`
	ShowPreview         bool    `json:"show_preview"`
	SuppressWhenFocused bool    `json:"suppress_when_focused"`
	QuietHoursEnabled   bool    `json:"quiet_hours_enabled"`
	QuietHoursStart     *string `json:"quiet_hours_start,omitempty"` // "22:00"
	QuietHoursEnd       *string `json:"quiet_hours_end,omitempty"`   // "08:00"
}

// DefaultNotificationSettings are used when nothing has been saved.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:             true,
		SoundEnabled:        true,
		ShowPreview:         true,
		SuppressWhenFocused: true,
		QuietHoursEnabled:   false,
	}
}

// NotificationData describes one notification to display.
type NotificationData struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	ChatID           string           `json:"chat_id,omitempty"`
	SenderID         string           `json:"sender_id,omitempty"`
	NotificationType NotificationType `json:"notification_type"`
	Timestamp        uint64           `json:"timestamp"`
}

// actionData is the record persisted per notification id so a later
// click can be routed.
type actionData struct {
	Type     NotificationType `json:"type"`
	ChatID   string           `json:"chat_id,omitempty"`
	SenderID string           `json:"sender_id,omitempty"`
}

// SaveNotificationSettings persists settings under the fixed key.
func (s *Shell) SaveNotificationSettings(settings NotificationSettings) error {
	if err := s.stores.Settings.Set(settingsKey, settings); err != nil {
		return err
	}
	return s.stores.Settings.Save()
}

// LoadNotificationSettings returns the saved settings, or the defaults
// when nothing has been saved.
func (s *Shell) LoadNotificationSettings() (NotificationSettings, error) {
	var settings NotificationSettings
	ok, err := s.stores.Settings.Get(settingsKey, &settings)
	if err != nil {
		return NotificationSettings{}, err
	}
	if !ok {
		return DefaultNotificationSettings(), nil
	}
	return settings, nil
}

// inQuietHours reports whether the current local time-of-day falls in
// the inclusive [start, end] range. The comparison is lexical on
// "HH:MM" strings and deliberately does not handle a range wrapping
// past midnight: 22:00-08:00 never matches. The settings UI shares the
// same assumption.
func (s *Shell) inQuietHours(settings NotificationSettings) bool {
	if !settings.QuietHoursEnabled || settings.QuietHoursStart == nil || settings.QuietHoursEnd == nil {
		return false
	}
	now := s.now().Format("15:04")
	return now >= *settings.QuietHoursStart && now <= *settings.QuietHoursEnd
}

// ShowNotification shows a notification subject to the gating sequence:
// disabled settings, focus suppression, then quiet hours, each a no-op.
// Before showing, an action-data record keyed by the notification id is
// stored to support click routing.
func (s *Shell) ShowNotification(data NotificationData) error {
	settings, err := s.LoadNotificationSettings()
	if err != nil {
		return err
	}

	if !settings.Enabled {
		return nil
	}

	if settings.SuppressWhenFocused {
		if w, ok := s.mainWindow(); ok && w.IsFocused() {
			return nil
		}
	}

	if s.inQuietHours(settings) {
		return nil
	}

	body := data.Body
	if !settings.ShowPreview {
		body = previewPlaceholder
	}

	if data.ID == "" {
		data.ID = uuid.NewString()
	}

	record := actionData{
		Type:     data.NotificationType,
		ChatID:   data.ChatID,
		SenderID: data.SenderID,
	}
	if err := s.stores.Notifications.Set(data.ID, record); err != nil {
		return err
	}
	if err := s.stores.Notifications.Save(); err != nil {
		return err
	}

	err = s.host.Notifier.Notify(host.Notification{
		Title: data.Title,
		Body:  body,
		Sound: settings.SoundEnabled,
	})
	if err != nil {
		return fmt.Errorf("show notification: %v", err)
	}
	s.log.Debug("notification shown", "id", data.ID, "type", string(data.NotificationType))
	return nil
}

// HandleNotificationClick routes a clicked notification using its
// stored action data and deletes the record regardless of outcome. An
// unknown id restores nothing and is not an error.
func (s *Shell) HandleNotificationClick(notificationID string) error {
	var record actionData
	ok, err := s.stores.Notifications.Get(notificationID, &record)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	defer func() {
		s.stores.Notifications.Delete(notificationID)
		_ = s.stores.Notifications.Save()
	}()

	switch record.Type {
	case NotificationMessage:
		if record.ChatID != "" {
			if err := s.CreateChatWindow(record.ChatID, "Contact"); err != nil {
				return err
			}
		}
		return s.RestoreFromTray()

	case NotificationContactRequest:
		if err := s.RestoreFromTray(); err != nil {
			return err
		}
		if w, ok := s.mainWindow(); ok {
			w.EmitEvent(EventShowContactRequests)
		}
		return nil

	case NotificationGroupInvite:
		if err := s.RestoreFromTray(); err != nil {
			return err
		}
		if w, ok := s.mainWindow(); ok {
			w.EmitEvent(EventShowGroupInvites)
		}
		return nil

	default:
		return s.RestoreFromTray()
	}
}

// ClearAllNotifications empties the pending-notification store.
func (s *Shell) ClearAllNotifications() error {
	s.stores.Notifications.Clear()
	return s.stores.Notifications.Save()
}

// RequestNotificationPermission asks the host for notification
// permission and returns its wire form.
func (s *Shell) RequestNotificationPermission() (string, error) {
	state, err := s.host.Notifier.RequestPermission()
	if err != nil {
		return "", fmt.Errorf("request notification permission: %v", err)
	}
	return state.String(), nil
}

// CheckNotificationPermission returns the current permission state.
func (s *Shell) CheckNotificationPermission() (string, error) {
	state, err := s.host.Notifier.CheckPermission()
	if err != nil {
		return "", fmt.Errorf("check notification permission: %v", err)
	}
	return state.String(), nil
}
