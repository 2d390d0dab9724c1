package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/stakehouse/pitboss/services/admin/internal/logic"
	"github.com/stakehouse/pitboss/services/admin/internal/svc"
	"github.com/stakehouse/pitboss/services/admin/internal/types"
)

func DiffConfigHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DiffConfigRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewDiffConfigLogic(r.Context(), svcCtx)
		resp, err := l.DiffConfig(&req)
		if err != nil {
			writeEngineError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
