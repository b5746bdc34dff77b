package dtos

type SaveHistoryResponse struct {
	Success bool `json:"success"`
}
