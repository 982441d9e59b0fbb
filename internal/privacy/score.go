package privacy

import (
	"math"
	"time"

	"github.com/iudanet/privacyhub/internal/models"
)

// Веса контролов при подсчете privacy score
var impactWeight = map[string]int{
	models.ImpactHigh:   3,
	models.ImpactMedium: 2,
	models.ImpactLow:    1,
}

// Score вычисляет privacy score (0..100) и количество issues для платформы
// Score - взвешенная доля контролов в приватном состоянии
// Issue - high-impact контрол, оставленный в публичном состоянии
// Контролы, отсутствующие в документе, считаются публичными
func Score(platform string, settings models.PrivacySettings) (score, issues int, err error) {
	controls, err := Controls(platform)
	if err != nil {
		return 0, 0, err
	}

	var total, private int
	for _, c := range controls {
		weight := impactWeight[c.Impact]
		total += weight

		if settings[c.Key] == c.Private {
			private += weight
			continue
		}

		if c.Impact == models.ImpactHigh {
			issues++
		}
	}

	score = int(math.Round(float64(private) / float64(total) * 100))
	return score, issues, nil
}

// BuildReport собирает сводку по платформе для дашборда
// Подключение платформ замокано: все три считаются подключенными
func BuildReport(platform string, settings models.PrivacySettings) (models.PlatformReport, error) {
	score, issues, err := Score(platform, settings)
	if err != nil {
		return models.PlatformReport{}, err
	}

	return models.PlatformReport{
		ID:           platform,
		Connected:    true,
		PrivacyScore: score,
		Issues:       issues,
	}, nil
}

// BuildExport собирает JSON документ для скачивания настроек платформы
func BuildExport(platform string, settings models.PrivacySettings, now time.Time) models.ExportDocument {
	return models.ExportDocument{
		Platform:        platform,
		ExportDate:      now.UTC(),
		PrivacySettings: settings,
	}
}
