package types

type (
	SaveConfigRequest struct {
		GameId     string         `path:"game_id"`
		ConfigType string         `path:"config_type"`
		AdminId    string         `header:"X-Admin-Id,optional"`
		RequestId  string         `header:"X-Request-Id,optional"`
		Payload    map[string]any `json:"payload"`
		Notes      string         `json:"notes,optional"`
	}

	ConfigDocumentResponse struct {
		DocumentId      string         `json:"document_id"`
		GameId          string         `json:"game_id"`
		ConfigType      string         `json:"config_type"`
		ConfigVersionId string         `json:"config_version_id"`
		Version         string         `json:"version,omitempty"`
		SchemaVersion   int            `json:"schema_version"`
		Document        map[string]any `json:"document"`
		CreatedBy       string         `json:"created_by"`
		CreatedAt       string         `json:"created_at"`
	}

	GetConfigRequest struct {
		GameId     string `path:"game_id"`
		ConfigType string `path:"config_type"`
	}

	ConfigVersionsRequest struct {
		GameId string `path:"game_id"`
	}

	ConfigVersionItem struct {
		Id        string `json:"id"`
		Version   string `json:"version"`
		Status    string `json:"status"`
		CreatedBy string `json:"created_by"`
		Notes     string `json:"notes,omitempty"`
		CreatedAt string `json:"created_at"`
	}

	ConfigVersionsResponse struct {
		GameId   string              `json:"game_id"`
		Versions []ConfigVersionItem `json:"versions"`
	}

	DiffConfigRequest struct {
		GameId        string `path:"game_id"`
		ConfigType    string `path:"config_type"`
		FromVersionId string `form:"from_version_id"`
		ToVersionId   string `form:"to_version_id"`
	}

	DiffChange struct {
		FieldPath  string `json:"field_path"`
		OldValue   any    `json:"old_value,omitempty"`
		NewValue   any    `json:"new_value,omitempty"`
		ChangeType string `json:"change_type"`
	}

	DiffConfigResponse struct {
		GameId        string       `json:"game_id"`
		ConfigType    string       `json:"config_type"`
		FromVersionId string       `json:"from_version_id"`
		ToVersionId   string       `json:"to_version_id"`
		Changes       []DiffChange `json:"changes"`
	}

	HealthzResponse struct {
		Status string `json:"status"`
	}
)
