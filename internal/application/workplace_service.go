package application

import (
	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/domain/workplace"
)

// WorkplaceService serves the static workplace catalog.
type WorkplaceService struct {
	logger *zap.Logger
}

// NewWorkplaceService creates a WorkplaceService.
func NewWorkplaceService(logger *zap.Logger) *WorkplaceService {
	return &WorkplaceService{logger: logger}
}

// GetWorkplaces returns the catalog for a branch. Unknown branches yield
// an empty list rather than an error.
func (s *WorkplaceService) GetWorkplaces(branch string) []workplace.Workplace {
	places := workplace.ForBranch(branch)
	s.logger.Debug("workplace catalog served",
		zap.String("branch", branch),
		zap.Int("count", len(places)),
	)
	return places
}
