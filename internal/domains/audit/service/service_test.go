package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/infras/otel/mocks"
	auditMocks "busline/internal/domains/audit/mocks"
	"busline/internal/domains/audit/model"
	"busline/internal/domains/audit/service"
	gDto "busline/shared/dto"
)

func TestAuditService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := auditMocks.NewMockAudit(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("lists archived records", func(t *testing.T) {
		entries := []model.Audit{
			{
				ID:        "audit-1",
				Table:     "buses",
				DataID:    "bus-1",
				Payload:   types.JSONText(`{"reg_number":"B 7412 KQT"}`),
				DeletedBy: "op-1",
			},
			{
				ID:        "audit-2",
				Table:     "routes",
				DataID:    "route-1",
				Payload:   types.JSONText(`{"origin":"Jakarta"}`),
				DeletedBy: "op-1",
			},
		}

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return(entries, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Audits, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "buses", res.Audits[0].Table)
		assert.JSONEq(t, `{"origin":"Jakarta"}`, string(res.Audits[1].Payload))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
