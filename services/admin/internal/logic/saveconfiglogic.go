package logic

import (
	"context"
	"encoding/json"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	"github.com/stakehouse/pitboss/internal/ports"
	configsvc "github.com/stakehouse/pitboss/internal/service/configs"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SaveConfigLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveConfigLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveConfigLogic {
	return &SaveConfigLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SaveConfigLogic) SaveConfig(req *types.SaveConfigRequest) (*types.ConfigDocumentResponse, error) {
	if req == nil || req.GameId == "" || req.ConfigType == "" {
		return nil, ErrInvalidRequest
	}
	envelope := map[string]any{"payload": req.Payload}
	if req.Notes != "" {
		envelope["notes"] = req.Notes
	}
	if err := l.svcCtx.ValidateSaveEnvelope(envelope); err != nil {
		return nil, err
	}

	res, err := l.svcCtx.Configs.Save(l.ctx, configsvc.SaveInput{
		GameID:    req.GameId,
		Type:      gameconfig.Type(req.ConfigType),
		Payload:   req.Payload,
		AdminID:   req.AdminId,
		Notes:     req.Notes,
		RequestID: req.RequestId,
	})
	if err != nil {
		return nil, err
	}
	return documentResponse(res.Document, res.Version.Version), nil
}

func documentResponse(doc *ports.ConfigDocument, version string) *types.ConfigDocumentResponse {
	var payload map[string]any
	_ = json.Unmarshal(doc.Payload, &payload)
	return &types.ConfigDocumentResponse{
		DocumentId:      doc.ID,
		GameId:          doc.GameID,
		ConfigType:      string(doc.ConfigType),
		ConfigVersionId: doc.ConfigVersionID,
		Version:         version,
		SchemaVersion:   doc.SchemaVersion,
		Document:        payload,
		CreatedBy:       doc.CreatedBy,
		CreatedAt:       doc.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
