package models

// Subscriber is a chat that receives the daily word notification
type Subscriber struct {
	ChatID           int64 `json:"chatId" db:"chat_id"`
	NotificationHour int   `json:"notificationHour" db:"notification_hour"` // Local hour 0-23
	Enabled          bool  `json:"enabled" db:"enabled"`
}
