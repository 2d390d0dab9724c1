package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/stakehouse/pitboss/services/admin/internal/logic"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"
)

func GetConfigHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetConfigRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGetConfigLogic(r.Context(), svcCtx)
		resp, err := l.GetConfig(&req)
		if err != nil {
			writeEngineError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
