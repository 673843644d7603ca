// internals/features/finance/transactions/dto/transaction_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	transactionModel "igrejaku_backend/internals/features/finance/transactions/model"
)

type CreateTransactionRequest struct {
	TransactionType        string    `json:"transaction_type" validate:"required,oneof=entrada saida"`
	TransactionCategory    string    `json:"transaction_category" validate:"required,min=2,max=80"`
	TransactionAmount      float64   `json:"transaction_amount" validate:"required,gt=0"`
	TransactionDescription *string   `json:"transaction_description" validate:"omitempty,max=255"`
	TransactionDate        time.Time `json:"transaction_date" validate:"required"`
	TransactionMemberID    *string   `json:"transaction_member_id" validate:"omitempty,uuid"`
}

type UpdateTransactionRequest struct {
	TransactionCategory    *string    `json:"transaction_category" validate:"omitempty,min=2,max=80"`
	TransactionAmount      *float64   `json:"transaction_amount" validate:"omitempty,gt=0"`
	TransactionDescription *string    `json:"transaction_description" validate:"omitempty,max=255"`
	TransactionDate        *time.Time `json:"transaction_date"`
}

// MonthlySummaryRow é uma linha do resumo mensal (agregada no banco).
type MonthlySummaryRow struct {
	Month        string  `json:"month" gorm:"column:month"`
	TotalEntrada float64 `json:"total_entrada" gorm:"column:total_entrada"`
	TotalSaida   float64 `json:"total_saida" gorm:"column:total_saida"`
	Balance      float64 `json:"balance" gorm:"column:balance"`
}

func (r *CreateTransactionRequest) ToModel(churchID uuid.UUID, recordedBy *uuid.UUID) *transactionModel.TransactionModel {
	m := &transactionModel.TransactionModel{
		TransactionChurchID:    churchID,
		TransactionType:        transactionModel.TransactionType(strings.ToLower(r.TransactionType)),
		TransactionCategory:    strings.TrimSpace(r.TransactionCategory),
		TransactionAmount:      r.TransactionAmount,
		TransactionDescription: r.TransactionDescription,
		TransactionDate:        r.TransactionDate,
		TransactionRecordedBy:  recordedBy,
	}
	if r.TransactionMemberID != nil {
		if id, err := uuid.Parse(*r.TransactionMemberID); err == nil {
			m.TransactionMemberID = &id
		}
	}
	return m
}

func (r *UpdateTransactionRequest) ApplyToModel(m *transactionModel.TransactionModel) {
	if r.TransactionCategory != nil {
		m.TransactionCategory = strings.TrimSpace(*r.TransactionCategory)
	}
	if r.TransactionAmount != nil {
		m.TransactionAmount = *r.TransactionAmount
	}
	if r.TransactionDescription != nil {
		m.TransactionDescription = r.TransactionDescription
	}
	if r.TransactionDate != nil {
		m.TransactionDate = *r.TransactionDate
	}
}
