package response

import (
	"encoding/json"

	"paguezap/internal/domain/entities"
)

type ConnectionTestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty" swaggertype:"object"`
	Error   json.RawMessage `json:"error,omitempty" swaggertype:"object"`
}

func FromConnectionResult(r entities.ConnectionResult) ConnectionTestResponse {
	return ConnectionTestResponse{Success: r.Success, Data: r.Data, Error: r.Error}
}
