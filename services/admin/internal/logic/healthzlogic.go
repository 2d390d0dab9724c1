package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"
)

type HealthzLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthzLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthzLogic {
	return &HealthzLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HealthzLogic) Healthz() (*types.HealthzResponse, error) {
	if db, err := l.svcCtx.DB.DB(); err == nil {
		if err := db.PingContext(l.ctx); err != nil {
			return &types.HealthzResponse{Status: "degraded"}, nil
		}
	}
	return &types.HealthzResponse{Status: "ok"}, nil
}
