package domain

type NotificationType string

const (
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is derived from the asset collection and never stored.
type Notification struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Type     NotificationType `json:"type"`
	Date     string           `json:"date"`
	AssetID  string           `json:"assetId"`
	DaysLeft int              `json:"daysLeft"`
}
