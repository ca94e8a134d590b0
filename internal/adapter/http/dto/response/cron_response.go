package response

import (
	"fmt"

	"paguezap/internal/usecase"
)

type ProcessChargesResponse struct {
	Message string                    `json:"message"`
	Results []usecase.BatchItemResult `json:"results"`
}

func FromBatchResults(results []usecase.BatchItemResult) ProcessChargesResponse {
	if results == nil {
		results = []usecase.BatchItemResult{}
	}
	return ProcessChargesResponse{
		Message: fmt.Sprintf("Processed %d charges", len(results)),
		Results: results,
	}
}
