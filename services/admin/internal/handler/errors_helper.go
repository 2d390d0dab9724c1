package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/stakehouse/pitboss/internal/gameconfig"
	configsvc "github.com/stakehouse/pitboss/internal/service/configs"
	"github.com/stakehouse/pitboss/services/admin/internal/logic"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
)

// writeEngineError maps engine errors onto the boundary contract: validation
// failures and diff lookup problems are 400 with machine-readable bodies,
// missing games/configs and category mismatches are 404, everything else
// falls through to the framework's 500 handling.
func writeEngineError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *gameconfig.ValidationError
	var na *configsvc.NotAvailableError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, verr)
	case errors.As(err, &na):
		httpx.WriteJsonCtx(ctx, w, http.StatusNotFound, map[string]any{
			"error_code": na.Code(),
			"message":    na.Error(),
		})
	case errors.Is(err, configsvc.ErrGameNotFound):
		httpx.WriteJsonCtx(ctx, w, http.StatusNotFound, map[string]any{
			"error_code": "GAME_NOT_FOUND",
			"message":    "game not found",
		})
	case errors.Is(err, configsvc.ErrConfigNotFound):
		httpx.WriteJsonCtx(ctx, w, http.StatusNotFound, map[string]any{
			"error_code": "CONFIG_NOT_FOUND",
			"message":    "no config stored for this game and type",
		})
	case errors.Is(err, configsvc.ErrTypeNotSupported):
		httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, map[string]any{
			"error_code": "CONFIG_TYPE_NOT_SUPPORTED",
			"message":    "unsupported config type",
			"details":    map[string]any{"reason": "type_not_supported"},
		})
	case errors.Is(err, configsvc.ErrVersionNotFound):
		httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, map[string]any{
			"error_code": "CONFIG_VERSION_NOT_FOUND",
			"message":    err.Error(),
			"details":    map[string]any{"reason": "version_not_found"},
		})
	case errors.Is(err, svc.ErrInvalidEnvelope), errors.Is(err, logic.ErrInvalidRequest):
		httpx.WriteJsonCtx(ctx, w, http.StatusBadRequest, map[string]any{
			"error_code": "INVALID_REQUEST",
			"message":    err.Error(),
		})
	default:
		httpx.ErrorCtx(ctx, w, err)
	}
}
