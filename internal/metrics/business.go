package metrics

// RecordStatusSet counts a successful status write; created distinguishes insert from update
func (m *Metrics) RecordStatusSet(created bool) {
	m.safeExecute("RecordStatusSet", func() {
		operation := "updated"
		if created {
			operation = "created"
		}
		m.StatusSetTotal.WithLabelValues(operation).Inc()
	})
}

// RecordStatusRemoved counts a status removed on request
func (m *Metrics) RecordStatusRemoved() {
	m.safeExecute("RecordStatusRemoved", func() {
		m.StatusRemovedTotal.Inc()
	})
}

// RecordStatusRejected counts a validation failure by reason
func (m *Metrics) RecordStatusRejected(reason string) {
	m.safeExecute("RecordStatusRejected", func() {
		m.StatusRejectedTotal.WithLabelValues(reason).Inc()
	})
}

// RecordUpsertRetry counts an upsert that had to retry
func (m *Metrics) RecordUpsertRetry() {
	m.safeExecute("RecordUpsertRetry", func() {
		m.StatusUpsertRetryTotal.Inc()
	})
}

// RecordStatusesExpired adds the number of rows removed by one sweep
func (m *Metrics) RecordStatusesExpired(count int64) {
	m.safeExecute("RecordStatusesExpired", func() {
		if count > 0 {
			m.StatusExpiredTotal.Add(float64(count))
		}
	})
}

// RecordCleanupRun counts a sweep run by outcome
func (m *Metrics) RecordCleanupRun(success bool) {
	m.safeExecute("RecordCleanupRun", func() {
		result := "success"
		if !success {
			result = "failure"
		}
		m.CleanupRunsTotal.WithLabelValues(result).Inc()
	})
}

// SetStatusesTotal sets total statuses gauge
func (m *Metrics) SetStatusesTotal(count int64) {
	m.safeExecute("SetStatusesTotal", func() {
		m.StatusesTotal.Set(float64(count))
	})
}
