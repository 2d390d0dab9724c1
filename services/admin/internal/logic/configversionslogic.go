package logic

import (
	"context"

	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ConfigVersionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConfigVersionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConfigVersionsLogic {
	return &ConfigVersionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ConfigVersionsLogic) ConfigVersions(req *types.ConfigVersionsRequest) (*types.ConfigVersionsResponse, error) {
	if req == nil || req.GameId == "" {
		return nil, ErrInvalidRequest
	}
	versions, err := l.svcCtx.Configs.Versions(l.ctx, req.GameId)
	if err != nil {
		return nil, err
	}
	items := make([]types.ConfigVersionItem, 0, len(versions))
	for _, v := range versions {
		items = append(items, types.ConfigVersionItem{
			Id:        v.ID,
			Version:   v.Version,
			Status:    v.Status,
			CreatedBy: v.CreatedBy,
			Notes:     v.Notes,
			CreatedAt: v.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return &types.ConfigVersionsResponse{GameId: req.GameId, Versions: items}, nil
}
