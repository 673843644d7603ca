// internals/features/finance/transactions/model/transaction_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentido do lançamento (enum do banco: transaction_type_enum)
type TransactionType string

const (
	TransactionEntrada TransactionType = "entrada"
	TransactionSaida   TransactionType = "saida"
)

func (t *TransactionType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = TransactionType(strings.ToLower(v))
	case []byte:
		*t = TransactionType(strings.ToLower(string(v)))
	default:
		return fmt.Errorf("tipo inválido para TransactionType: %T", value)
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return strings.ToLower(string(t)), nil
}

// TransactionModel é um lançamento do livro-caixa da igreja.
type TransactionModel struct {
	TransactionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:transaction_id" json:"transaction_id"`

	TransactionChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:transaction_church_id" json:"transaction_church_id"`

	TransactionType     TransactionType `gorm:"type:varchar(10);not null;column:transaction_type" json:"transaction_type"`
	TransactionCategory string          `gorm:"size:80;not null;column:transaction_category" json:"transaction_category"`
	TransactionAmount   float64         `gorm:"type:numeric(12,2);not null;column:transaction_amount" json:"transaction_amount"`

	TransactionDescription *string   `gorm:"size:255;column:transaction_description" json:"transaction_description,omitempty"`
	TransactionDate        time.Time `gorm:"type:date;not null;index;column:transaction_date" json:"transaction_date"`

	// dízimos/ofertas podem apontar para a ficha do membro
	TransactionMemberID   *uuid.UUID `gorm:"type:uuid;column:transaction_member_id" json:"transaction_member_id,omitempty"`
	TransactionRecordedBy *uuid.UUID `gorm:"type:uuid;column:transaction_recorded_by" json:"transaction_recorded_by,omitempty"`

	TransactionCreatedAt time.Time      `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
	TransactionUpdatedAt *time.Time     `gorm:"column:transaction_updated_at;autoUpdateTime" json:"transaction_updated_at,omitempty"`
	TransactionDeletedAt gorm.DeletedAt `gorm:"column:transaction_deleted_at;index" json:"transaction_deleted_at,omitempty"`
}

func (TransactionModel) TableName() string { return "fin_transactions" }
