package service

import (
	"time"

	"github.com/teefisher2k20/langchain/internal/domain"
)

// HealthService construye el estado reportado por GET /api/health.
type HealthService struct {
	now func() time.Time
}

func NewHealthService(now func() time.Time) *HealthService {
	if now == nil {
		now = time.Now
	}
	return &HealthService{now: now}
}

func (s *HealthService) Check() domain.HealthStatus {
	return domain.HealthStatus{
		Status:           domain.HealthyStatus,
		Timestamp:        domain.FormatTimestamp(s.now()),
		LangChainVersion: domain.LangChainVersion,
	}
}
