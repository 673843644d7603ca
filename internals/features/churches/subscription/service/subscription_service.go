// internals/features/churches/subscription/service/subscription_service.go
package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"igrejaku_backend/internals/constants"
	churchModel "igrejaku_backend/internals/features/churches/churches/model"
	subModel "igrejaku_backend/internals/features/churches/subscription/model"
	helper "igrejaku_backend/internals/helpers"
)

// Janelas do modo degradado: se o banco falhar numa leitura de status,
// devolvemos o último status conhecido (se fresco) ou abrimos fail-open
// "ativa" por tempo limitado, para não trancar pagante por erro transiente.
const (
	LastKnownGoodWindow = 15 * time.Minute
	FailOpenWindow      = 1 * time.Hour
)

type lastKnownStatus struct {
	result StatusResult
	seenAt time.Time
}

type SubscriptionService struct {
	DB *gorm.DB

	// Now é injetável para teste; default time.Now.
	Now func() time.Time

	mu          sync.RWMutex
	lastKnown   map[uuid.UUID]lastKnownStatus
	outageSince map[uuid.UUID]time.Time
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{
		DB:          db,
		Now:         time.Now,
		lastKnown:   make(map[uuid.UUID]lastKnownStatus),
		outageSince: make(map[uuid.UUID]time.Time),
	}
}

/* ===================== LEITURA DE STATUS ===================== */

// GetStatus deriva o status autoritativo da igreja agora. Nunca usa cache no
// caminho feliz: o cache só serve ao modo degradado.
func (s *SubscriptionService) GetStatus(churchID uuid.UUID) (StatusResult, error) {
	now := s.Now()

	var church churchModel.ChurchModel
	if err := s.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResult{}, helper.Wrapf(helper.ErrNotFound, "igreja %s", churchID)
		}
		return s.degraded(churchID, now, err)
	}

	in, err := s.loadStatusInput(church)
	if err != nil {
		if errors.Is(err, helper.ErrInvariantViolation) {
			return StatusResult{}, err
		}
		return s.degraded(churchID, now, err)
	}

	result := ComputeStatus(in, now)

	s.mu.Lock()
	s.lastKnown[churchID] = lastKnownStatus{result: result, seenAt: now}
	delete(s.outageSince, churchID)
	s.mu.Unlock()

	return result, nil
}

// loadStatusInput monta o input do state machine. Igreja sem linha de
// assinatura usa a janela derivada da criação (subscribed_at = created_at).
func (s *SubscriptionService) loadStatusInput(church churchModel.ChurchModel) (StatusInput, error) {
	var sub subModel.ChurchSubscription
	err := s.DB.First(&sub, "subscription_church_id = ?", church.ChurchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		subscribedAt, nextDueAt, graceUntil := DefaultWindow(church.ChurchCreatedAt)
		return StatusInput{
			CreatedAt:    church.ChurchCreatedAt,
			SubscribedAt: subscribedAt,
			NextDueAt:    nextDueAt,
			GraceUntil:   graceUntil,
		}, nil
	}
	if err != nil {
		return StatusInput{}, err
	}

	in := StatusInput{
		CreatedAt:    church.ChurchCreatedAt,
		SubscribedAt: sub.SubscriptionSubscribedAt,
		NextDueAt:    sub.SubscriptionNextDueAt,
		GraceUntil:   sub.SubscriptionGraceUntil,
		ManualStatus: sub.SubscriptionManualStatus,
	}
	if err := CheckDateInvariants(in); err != nil {
		return StatusInput{}, err
	}
	return in, nil
}

// degraded aplica a política de indisponibilidade do upstream:
// last-known-good fresco → devolve; senão fail-open "ativa" dentro da janela
// limitada; estourou a janela → erro (fail closed).
func (s *SubscriptionService) degraded(churchID uuid.UUID, now time.Time, cause error) (StatusResult, error) {
	log.Printf("[WARN] status indisponível para igreja %s: %v", churchID, cause)

	s.mu.Lock()
	outage, tracking := s.outageSince[churchID]
	if !tracking {
		outage = now
		s.outageSince[churchID] = now
	}
	cached, hasCached := s.lastKnown[churchID]
	s.mu.Unlock()

	if hasCached && now.Sub(cached.seenAt) <= LastKnownGoodWindow {
		return cached.result, nil
	}

	if now.Sub(outage) <= FailOpenWindow {
		log.Printf("[WARN] fail-open 'ativa' para igreja %s (sem last-known-good fresco)", churchID)
		return StatusResult{Status: subModel.StatusAtiva, Blocked: false}, nil
	}

	return StatusResult{}, helper.Wrapf(helper.ErrUpstreamUnavailable, "status da igreja %s", churchID)
}

/* ===================== MUTAÇÕES ===================== */

// RegisterPayment reinicia a janela de cobrança a partir de "agora" e limpa
// qualquer override manual (inclusive cancelada, é o caminho de reativação).
// Reaplicar é idempotente: a janela apenas reinicia de novo, sem acumular
// crédito. Toda a linha é gravada num único upsert atômico.
func (s *SubscriptionService) RegisterPayment(churchID uuid.UUID, actorRole string, planAmount float64) (StatusResult, error) {
	if !constants.HasPermission(actorRole, constants.CanEditBilling) {
		return StatusResult{}, helper.Wrapf(helper.ErrAuthorization, "role %q não pode registrar pagamento", actorRole)
	}
	if err := s.ensureChurchExists(churchID); err != nil {
		return StatusResult{}, err
	}

	now := s.Now()
	subscribedAt, nextDueAt, graceUntil := DefaultWindow(now)

	in := StatusInput{SubscribedAt: subscribedAt, NextDueAt: nextDueAt, GraceUntil: graceUntil}
	if err := CheckDateInvariants(in); err != nil {
		return StatusResult{}, err
	}

	sub := subModel.ChurchSubscription{
		SubscriptionChurchID:     churchID,
		SubscriptionPlanAmount:   planAmount,
		SubscriptionSubscribedAt: subscribedAt,
		SubscriptionNextDueAt:    nextDueAt,
		SubscriptionGraceUntil:   graceUntil,
		SubscriptionManualStatus: nil,
	}
	assign := map[string]interface{}{
		"subscription_subscribed_at": subscribedAt,
		"subscription_next_due_at":   nextDueAt,
		"subscription_grace_until":   graceUntil,
		"subscription_manual_status": nil,
	}
	if planAmount > 0 {
		assign["subscription_plan_amount"] = planAmount
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscription_church_id"}},
		DoUpdates: clause.Assignments(assign),
	}).Create(&sub).Error
	if err != nil {
		return StatusResult{}, helper.Wrapf(helper.ErrUpstreamUnavailable, "registrar pagamento: %v", err)
	}

	return s.GetStatus(churchID)
}

// Suspend força o status manual "suspensa". Só superadmin.
func (s *SubscriptionService) Suspend(churchID uuid.UUID, actorRole string) (StatusResult, error) {
	return s.setManualStatus(churchID, actorRole, subModel.StatusSuspensa)
}

// Cancel força o status manual "cancelada". Terminal até RegisterPayment.
func (s *SubscriptionService) Cancel(churchID uuid.UUID, actorRole string) (StatusResult, error) {
	return s.setManualStatus(churchID, actorRole, subModel.StatusCancelada)
}

// Resume limpa o override manual e volta para a computação automática, que
// pode re-suspender na hora se a carência já passou (intencional: resume não
// perdoa atraso).
func (s *SubscriptionService) Resume(churchID uuid.UUID, actorRole string) (StatusResult, error) {
	if actorRole != constants.RoleSuperadmin {
		return StatusResult{}, helper.Wrapf(helper.ErrAuthorization, "role %q não pode reativar assinatura", actorRole)
	}
	if err := s.ensureChurchExists(churchID); err != nil {
		return StatusResult{}, err
	}

	err := s.DB.Model(&subModel.ChurchSubscription{}).
		Where("subscription_church_id = ?", churchID).
		Update("subscription_manual_status", nil).Error
	if err != nil {
		return StatusResult{}, helper.Wrapf(helper.ErrUpstreamUnavailable, "resume: %v", err)
	}

	return s.GetStatus(churchID)
}

func (s *SubscriptionService) setManualStatus(churchID uuid.UUID, actorRole string, status subModel.SubscriptionStatus) (StatusResult, error) {
	if actorRole != constants.RoleSuperadmin {
		return StatusResult{}, helper.Wrapf(helper.ErrAuthorization, "role %q não pode forçar status %s", actorRole, status)
	}
	if !status.IsManual() {
		return StatusResult{}, helper.Wrapf(helper.ErrInvariantViolation, "status %q não é override manual válido", status)
	}

	var church churchModel.ChurchModel
	if err := s.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResult{}, helper.Wrapf(helper.ErrNotFound, "igreja %s", churchID)
		}
		return StatusResult{}, helper.Wrapf(helper.ErrUpstreamUnavailable, "carregar igreja: %v", err)
	}

	// upsert: igreja pode ainda não ter linha de assinatura (janela derivada)
	subscribedAt, nextDueAt, graceUntil := DefaultWindow(church.ChurchCreatedAt)
	sub := subModel.ChurchSubscription{
		SubscriptionChurchID:     churchID,
		SubscriptionSubscribedAt: subscribedAt,
		SubscriptionNextDueAt:    nextDueAt,
		SubscriptionGraceUntil:   graceUntil,
		SubscriptionManualStatus: &status,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "subscription_church_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"subscription_manual_status": status,
		}),
	}).Create(&sub).Error
	if err != nil {
		return StatusResult{}, helper.Wrapf(helper.ErrUpstreamUnavailable, "forçar status: %v", err)
	}

	return s.GetStatus(churchID)
}

func (s *SubscriptionService) ensureChurchExists(churchID uuid.UUID) error {
	var cnt int64
	if err := s.DB.Model(&churchModel.ChurchModel{}).Where("church_id = ?", churchID).Count(&cnt).Error; err != nil {
		return helper.Wrapf(helper.ErrUpstreamUnavailable, "checar igreja: %v", err)
	}
	if cnt == 0 {
		return helper.Wrapf(helper.ErrNotFound, "igreja %s", churchID)
	}
	return nil
}
