// internals/features/finance/transactions/controller/transaction_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	transactionDTO "igrejaku_backend/internals/features/finance/transactions/dto"
	transactionModel "igrejaku_backend/internals/features/finance/transactions/model"
	helper "igrejaku_backend/internals/helpers"
)

type TransactionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db, Validate: validator.New()}
}

// POST /api/a/finance/transactions
func (h *TransactionController) Create(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	var req transactionDTO.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var recordedBy *uuid.UUID
	if userID, err := helper.GetUserID(c); err == nil {
		recordedBy = &userID
	}

	tx := req.ToModel(churchID, recordedBy)
	if err := h.DB.Create(tx).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao registrar lançamento")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lançamento registrado ✅", tx)
}

// GET /api/a/finance/transactions (?type=&category=&from=&to=)
func (h *TransactionController) List(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&transactionModel.TransactionModel{}).Where("transaction_church_id = ?", churchID)
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("transaction_type = ?", strings.ToLower(t))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("transaction_category = ?", cat)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("transaction_date >= ?", t)
		}
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("transaction_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao contar lançamentos")
	}

	var txs []transactionModel.TransactionModel
	if err := q.Order("transaction_date DESC, transaction_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&txs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao listar lançamentos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"transactions": txs,
		"pagination":   helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/a/finance/summary: entradas/saídas/saldo por mês (?year=2026)
func (h *TransactionController) MonthlySummary(c *fiber.Ctx) error {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return err
	}

	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		year = time.Now().UTC().Format("2006")
	}

	var rows []transactionDTO.MonthlySummaryRow
	if err := h.DB.Raw(`
		SELECT to_char(transaction_date, 'YYYY-MM') AS month,
		       COALESCE(SUM(transaction_amount) FILTER (WHERE transaction_type = 'entrada'), 0) AS total_entrada,
		       COALESCE(SUM(transaction_amount) FILTER (WHERE transaction_type = 'saida'), 0)   AS total_saida,
		       COALESCE(SUM(CASE WHEN transaction_type = 'entrada' THEN transaction_amount
		                         ELSE -transaction_amount END), 0)                              AS balance
		FROM fin_transactions
		WHERE transaction_church_id = ?
		  AND transaction_deleted_at IS NULL
		  AND to_char(transaction_date, 'YYYY') = ?
		GROUP BY 1
		ORDER BY 1
	`, churchID, year).Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao montar o resumo")
	}

	return helper.Success(c, "OK", fiber.Map{
		"year":   year,
		"months": rows,
	})
}

// PATCH /api/a/finance/transactions/:id
func (h *TransactionController) Update(c *fiber.Ctx) error {
	tx, err := h.findScoped(c)
	if err != nil {
		return err
	}

	var req transactionDTO.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload inválido")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(tx)
	if err := h.DB.Save(tx).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao atualizar lançamento")
	}
	return helper.Success(c, "Lançamento atualizado ✅", tx)
}

// DELETE /api/a/finance/transactions/:id
func (h *TransactionController) Delete(c *fiber.Ctx) error {
	tx, err := h.findScoped(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(tx).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao remover lançamento")
	}
	return helper.Success(c, "Lançamento removido", nil)
}

func (h *TransactionController) findScoped(c *fiber.Ctx) (*transactionModel.TransactionModel, error) {
	churchID, err := helper.GetScopeChurchID(c)
	if err != nil {
		return nil, err
	}
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var tx transactionModel.TransactionModel
	if err := h.DB.First(&tx, "transaction_id = ? AND transaction_church_id = ?", txID, churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao carregar lançamento")
	}
	return &tx, nil
}
