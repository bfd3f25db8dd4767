package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionRegister               = "register"
	AuditActionLogin                  = "login"
	AuditActionLogout                 = "logout"
	AuditActionFailedLogin            = "failed_login"
	AuditActionAccountLocked          = "account_locked"
	AuditActionTokenRefresh           = "token_refresh"
	AuditActionPasswordResetRequested = "password_reset_requested"
	AuditActionPasswordReset          = "password_reset"
	AuditActionCreate                 = "create"
	AuditActionUpdate                 = "update"
	AuditActionDelete                 = "delete"
	AuditActionStatementAdjusted      = "statement_adjusted"
	AuditActionChecklistUpdated       = "checklist_updated"
)

const (
	AuditResourceUser           = "user"
	AuditResourceCard           = "card"
	AuditResourceStatement      = "statement"
	AuditResourceStatementEntry = "statement_entry"
	AuditResourceLedgerEntry    = "ledger_entry"
	AuditResourceCategory       = "category"
	AuditResourceChecklist      = "checklist"
)

type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value any) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is a JSON object column, stored as text so sqlite can hold it too.
type JSONBMap map[string]any

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil || len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
