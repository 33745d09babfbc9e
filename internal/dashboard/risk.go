package dashboard

import "github.com/JaiMadhav/VitalOps/internal/domain"

// BadgeVariant 风险徽章样式
type BadgeVariant string

const (
	BadgeDestructive BadgeVariant = "destructive"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDefault     BadgeVariant = "default"
	BadgeOutline     BadgeVariant = "outline"
)

// RiskTone 风险等级对应的文字色调
func RiskTone(level domain.RiskLevel) Tone {
	switch level {
	case domain.RiskHigh:
		return ToneDestructive
	case domain.RiskMedium:
		return ToneWarning
	case domain.RiskLow:
		return ToneSuccess
	default:
		return ToneMuted
	}
}

// RiskBadge 风险等级对应的徽章样式
func RiskBadge(level domain.RiskLevel) BadgeVariant {
	switch level {
	case domain.RiskHigh:
		return BadgeDestructive
	case domain.RiskMedium:
		return BadgeSecondary
	case domain.RiskLow:
		return BadgeDefault
	default:
		return BadgeOutline
	}
}
