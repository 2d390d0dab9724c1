package logic

import (
	"context"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DiffConfigLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDiffConfigLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DiffConfigLogic {
	return &DiffConfigLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DiffConfigLogic) DiffConfig(req *types.DiffConfigRequest) (*types.DiffConfigResponse, error) {
	if req == nil || req.GameId == "" || req.ConfigType == "" ||
		req.FromVersionId == "" || req.ToVersionId == "" {
		return nil, ErrInvalidRequest
	}
	res, err := l.svcCtx.Configs.Diff(l.ctx, req.GameId, gameconfig.Type(req.ConfigType), req.FromVersionId, req.ToVersionId)
	if err != nil {
		return nil, err
	}
	changes := make([]types.DiffChange, 0, len(res.Changes))
	for _, ch := range res.Changes {
		changes = append(changes, types.DiffChange{
			FieldPath:  ch.FieldPath,
			OldValue:   ch.OldValue,
			NewValue:   ch.NewValue,
			ChangeType: string(ch.ChangeType),
		})
	}
	return &types.DiffConfigResponse{
		GameId:        res.GameID,
		ConfigType:    string(res.ConfigType),
		FromVersionId: res.FromVersionID,
		ToVersionId:   res.ToVersionID,
		Changes:       changes,
	}, nil
}
