package models

import "time"

// Поддерживаемые платформы
const (
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
)

// Impact уровни влияния privacy контрола
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// PrivacySettings представляет документ настроек приватности одной платформы
// Ключ - имя контрола (например "profileVisibility"), значение - текущее состояние
type PrivacySettings map[string]string

// PlatformSettings представляет сохраненные настройки пользователя для платформы
type PlatformSettings struct {
	UserID    string          `json:"-"`          // владелец
	Platform  string          `json:"platform"`   // facebook/twitter/instagram
	Settings  PrivacySettings `json:"settings"`   // документ настроек
	UpdatedAt time.Time       `json:"updated_at"` // время последнего изменения
}

// PlatformReport представляет агрегированную сводку по платформе для дашборда
type PlatformReport struct {
	ID           string `json:"id"`           // идентификатор платформы
	Connected    bool   `json:"connected"`    // подключена ли платформа
	PrivacyScore int    `json:"privacyScore"` // 0..100
	Issues       int    `json:"issues"`       // количество high-impact контролов в публичном состоянии
}

// ExportDocument представляет JSON документ для скачивания настроек
type ExportDocument struct {
	Platform        string          `json:"platform"`
	ExportDate      time.Time       `json:"exportDate"`
	PrivacySettings PrivacySettings `json:"privacySettings"`
}
