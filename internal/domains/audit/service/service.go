package service

import (
	"busline/infras/otel"
	"busline/internal/domains/audit/model/dto"
	"busline/internal/domains/audit/repository"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Audit interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditsResponse, error)
}

// The audit log is an operator forensics view; it bypasses the cache so a
// just-deleted record is visible immediately.
type serviceImpl struct {
	repo repository.Audit
	otel otel.Otel
}

func New(repo repository.Audit, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".audit.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")

		return res, fmt.Errorf("failed to count audit entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit entries")

		return res, fmt.Errorf("failed to get audit entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
