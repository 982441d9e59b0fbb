package privacy

import (
	"fmt"

	"github.com/iudanet/privacyhub/internal/models"
)

// Control описывает один privacy контрол платформы
type Control struct {
	Key     string // имя контрола в документе настроек
	Default string // значение по умолчанию
	Private string // значение, при котором контрол считается приватным
	Impact  string // high/medium/low
}

// Общие контролы, присутствующие на всех платформах
var commonControls = []Control{
	{Key: "profileVisibility", Default: "friends", Private: "friends", Impact: models.ImpactHigh},
	{Key: "dataSharing", Default: "minimal", Private: "minimal", Impact: models.ImpactHigh},
	{Key: "thirdPartyAccess", Default: "restricted", Private: "restricted", Impact: models.ImpactHigh},
	{Key: "adPersonalization", Default: "limited", Private: "limited", Impact: models.ImpactLow},
}

// Платформо-специфичные контролы
var platformControls = map[string][]Control{
	models.PlatformFacebook: {
		{Key: "locationSharing", Default: "off", Private: "off", Impact: models.ImpactHigh},
		{Key: "faceRecognition", Default: "disabled", Private: "disabled", Impact: models.ImpactHigh},
		{Key: "timeline", Default: "friends-only", Private: "friends-only", Impact: models.ImpactMedium},
		{Key: "tagApproval", Default: "enabled", Private: "enabled", Impact: models.ImpactLow},
	},
	models.PlatformTwitter: {
		{Key: "directMessages", Default: "followers-only", Private: "followers-only", Impact: models.ImpactMedium},
		{Key: "tweetVisibility", Default: "public", Private: "followers-only", Impact: models.ImpactMedium},
		{Key: "locationTagging", Default: "disabled", Private: "disabled", Impact: models.ImpactHigh},
		{Key: "discoverability", Default: "email-only", Private: "email-only", Impact: models.ImpactLow},
	},
	models.PlatformInstagram: {
		{Key: "storySharing", Default: "close-friends", Private: "close-friends", Impact: models.ImpactMedium},
		{Key: "activityStatus", Default: "off", Private: "off", Impact: models.ImpactLow},
		{Key: "mentionAllowance", Default: "followers", Private: "followers", Impact: models.ImpactMedium},
		{Key: "commentFiltering", Default: "strict", Private: "strict", Impact: models.ImpactLow},
	},
}

// Platforms возвращает список поддерживаемых платформ в стабильном порядке
func Platforms() []string {
	return []string{
		models.PlatformFacebook,
		models.PlatformTwitter,
		models.PlatformInstagram,
	}
}

// IsKnownPlatform проверяет, поддерживается ли платформа
func IsKnownPlatform(platform string) bool {
	_, ok := platformControls[platform]
	return ok
}

// Controls возвращает полный набор контролов платформы (общие + специфичные)
func Controls(platform string) ([]Control, error) {
	specific, ok := platformControls[platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform: %s", platform)
	}

	controls := make([]Control, 0, len(commonControls)+len(specific))
	controls = append(controls, commonControls...)
	controls = append(controls, specific...)
	return controls, nil
}

// DefaultSettings возвращает документ настроек платформы по умолчанию
func DefaultSettings(platform string) (models.PrivacySettings, error) {
	controls, err := Controls(platform)
	if err != nil {
		return nil, err
	}

	settings := make(models.PrivacySettings, len(controls))
	for _, c := range controls {
		settings[c.Key] = c.Default
	}
	return settings, nil
}

// ValidateSettings проверяет, что документ не содержит неизвестных контролов
// Значения не ограничиваются: платформы принимают произвольные состояния
func ValidateSettings(platform string, settings models.PrivacySettings) error {
	controls, err := Controls(platform)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(controls))
	for _, c := range controls {
		known[c.Key] = true
	}

	for key := range settings {
		if !known[key] {
			return fmt.Errorf("unknown privacy control: %s", key)
		}
	}

	return nil
}
