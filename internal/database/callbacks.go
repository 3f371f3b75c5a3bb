package database

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder records database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

// registrar is satisfied by the positioned callbacks gorm returns from Before/After
type registrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

// RegisterMetricsCallbacks times every select, insert, update and delete.
// A select that finds no row is not counted as an error.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	hooks := []struct {
		operation string
		before    registrar
		after     registrar
	}{
		{"select", cb.Query().Before("gorm:query"), cb.Query().After("gorm:query")},
		{"insert", cb.Create().Before("gorm:create"), cb.Create().After("gorm:create")},
		{"update", cb.Update().Before("gorm:update"), cb.Update().After("gorm:update")},
		{"delete", cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete")},
	}

	for _, h := range hooks {
		operation := h.operation
		if err := h.before.Register("metrics:"+operation+"_before", func(tx *gorm.DB) {
			tx.InstanceSet(startTimeKey, time.Now())
		}); err != nil {
			return err
		}
		if err := h.after.Register("metrics:"+operation+"_after", func(tx *gorm.DB) {
			started, ok := tx.InstanceGet(startTimeKey)
			if !ok {
				return
			}
			queryErr := tx.Error
			if errors.Is(queryErr, gorm.ErrRecordNotFound) {
				queryErr = nil
			}
			recorder.RecordDBQuery(operation, tx.Statement.Table, time.Since(started.(time.Time)), queryErr)
		}); err != nil {
			return err
		}
	}

	return nil
}
