package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaiMadhav/VitalOps/internal/domain"

	"go.uber.org/zap"
)

// PostgresObservationRepo 从 health_observations 表读取单个 subject 的观测序列（只读）
type PostgresObservationRepo struct {
	db        *sql.DB
	subjectID string
	logger    *zap.Logger
}

// NewPostgresObservationRepo 创建观测 Repository
func NewPostgresObservationRepo(db *sql.DB, subjectID string, logger *zap.Logger) *PostgresObservationRepo {
	return &PostgresObservationRepo{db: db, subjectID: subjectID, logger: logger}
}

var _ ObservationRepository = (*PostgresObservationRepo)(nil)

// List 按 observed_at 升序读取全部观测
// 同一时间戳出现多行时只保留第一行（DISTINCT ON）
func (r *PostgresObservationRepo) List(ctx context.Context) ([]domain.HealthObservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (observed_at)
			observed_at,
			heart_rate,
			temperature,
			weight,
			sleep_hours,
			stress_level,
			risk_level
		FROM health_observations
		WHERE subject_id = $1
		ORDER BY observed_at ASC`,
		r.subjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	out := []domain.HealthObservation{}
	for rows.Next() {
		var (
			o    domain.HealthObservation
			risk sql.NullString
		)
		if err := rows.Scan(&o.Timestamp, &o.HeartRate, &o.Temperature, &o.Weight,
			&o.SleepHours, &o.StressLevel, &risk); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}

		lvl, err := domain.ParseRiskLevel(risk.String)
		if err != nil {
			// 非法风险等级不影响其余字段
			r.logger.Warn("Invalid risk level in health_observations",
				zap.String("subject_id", r.subjectID),
				zap.Time("observed_at", o.Timestamp),
				zap.String("risk_level", risk.String),
			)
		}
		o.RiskLevel = lvl
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate observations: %w", err)
	}

	return out, nil
}
