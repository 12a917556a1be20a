package domain

import "time"

// AuditLog is an append-only operation trail written by event subscribers.
type AuditLog struct {
	ID        int64     `json:"id,string"`
	Actor     string    `gorm:"index" json:"actor"`
	Action    string    `gorm:"index" json:"action"`
	Detail    string    `gorm:"size:2048" json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "tb_audit_log"
}
