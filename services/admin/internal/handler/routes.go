package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/stakehouse/pitboss/services/admin/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/games/:game_id/configs/:config_type",
				Handler: SaveConfigHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/games/:game_id/configs/:config_type",
				Handler: GetConfigHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/games/:game_id/configs/:config_type/diff",
				Handler: DiffConfigHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/games/:game_id/config-versions",
				Handler: ConfigVersionsHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthzHandler(serverCtx),
			},
		},
	)
}
