package audit

import (
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// Logger writes events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	row := ToModel(ev)
	return l.db.WithContext(ctx).Create(&row).Error
}

func ToModel(ev Event) models.AuditLog {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}
	return models.AuditLog{
		SalonID:  ev.SalonID,
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: meta,
	}
}

// ZapSink only logs. It is used when no database is configured.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: logger.OrNop(log)}
}

func (s *ZapSink) Write(_ context.Context, ev Event) error {
	row := ToModel(ev)
	s.log.Info("audit",
		zap.Int64("salon_id", row.SalonID),
		zap.String("actor_id", row.ActorID),
		zap.String("action", row.Action),
		zap.String("entity", row.Entity),
		zap.String("entity_id", row.EntityID),
		zap.String("metadata", row.Metadata),
	)
	return nil
}
