package dto

type ChecklistBulkItem struct {
	LedgerEntryID string `json:"ledger_entry_id" validate:"required,uuid"`
	Checked       bool   `json:"checked"`
}

type ChecklistBulkRequest struct {
	Month int                 `json:"month" validate:"required,month"`
	Year  int                 `json:"year" validate:"required,min=2000,max=2100"`
	Items []ChecklistBulkItem `json:"items" validate:"required,dive"`
}

type ChecklistBulkResponse struct {
	OK         bool   `json:"ok"`
	Competence string `json:"competence"`
	Updated    int    `json:"updated"`
}
