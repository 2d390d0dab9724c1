package logic

import (
	"context"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetConfigLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetConfigLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetConfigLogic {
	return &GetConfigLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetConfigLogic) GetConfig(req *types.GetConfigRequest) (*types.ConfigDocumentResponse, error) {
	if req == nil || req.GameId == "" || req.ConfigType == "" {
		return nil, ErrInvalidRequest
	}
	doc, err := l.svcCtx.Configs.Current(l.ctx, req.GameId, gameconfig.Type(req.ConfigType))
	if err != nil {
		return nil, err
	}
	return documentResponse(doc, ""), nil
}
