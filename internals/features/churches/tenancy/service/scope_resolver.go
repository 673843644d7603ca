// internals/features/churches/tenancy/service/scope_resolver.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"igrejaku_backend/internals/constants"
	churchModel "igrejaku_backend/internals/features/churches/churches/model"
	tenancyModel "igrejaku_backend/internals/features/churches/tenancy/model"
	helper "igrejaku_backend/internals/helpers"
)

// Tempo de vida do "visualizar como igreja". Renovado a cada switch.
const ViewSessionTTL = 12 * time.Hour

// Profile é a identidade mínima que o resolver precisa, passada explícita
// (injeção), nunca lida de estado ambiente.
type Profile struct {
	UserID   uuid.UUID
	Role     string
	ChurchID *uuid.UUID
}

// Override é o estado "visualizando igreja X" de uma sessão de superadmin.
type Override struct {
	ChurchID   uuid.UUID `json:"church_id"`
	ChurchName string    `json:"church_name"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ResolveScope computa a única igreja à qual toda query da sessão deve se
// restringir:
//  1. não-superadmin → sempre a igreja do próprio profile (override ignorado;
//     ninguém escapa do próprio tenant)
//  2. superadmin com override vigente → igreja do override
//  3. superadmin sem override → nil (visões de plataforma, sem escopo)
func ResolveScope(p Profile, override *Override, now time.Time) *uuid.UUID {
	if p.Role != constants.RoleSuperadmin {
		return p.ChurchID
	}
	if override != nil && now.Before(override.ExpiresAt) {
		id := override.ChurchID
		return &id
	}
	return nil
}

/* ===================== STORE (sessão) ===================== */

type ScopeService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewScopeService(db *gorm.DB) *ScopeService {
	return &ScopeService{DB: db, Now: time.Now}
}

// SwitchChurch grava o override da sessão. Só superadmin; qualquer outro role
// é rejeitado explicitamente, nunca sucesso silencioso com semântica errada.
func (s *ScopeService) SwitchChurch(p Profile, churchID uuid.UUID) (*Override, error) {
	if p.Role != constants.RoleSuperadmin {
		return nil, helper.Wrapf(helper.ErrAuthorization, "role %q não pode trocar de igreja", p.Role)
	}

	var church churchModel.ChurchModel
	if err := s.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Wrapf(helper.ErrNotFound, "igreja %s", churchID)
		}
		return nil, helper.Wrapf(helper.ErrUpstreamUnavailable, "carregar igreja: %v", err)
	}

	expiresAt := s.Now().Add(ViewSessionTTL)
	row := tenancyModel.ChurchViewSession{
		ChurchViewUserID:     p.UserID,
		ChurchViewChurchID:   church.ChurchID,
		ChurchViewChurchName: church.ChurchName,
		ChurchViewExpiresAt:  expiresAt,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "church_view_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"church_view_church_id":   church.ChurchID,
			"church_view_church_name": church.ChurchName,
			"church_view_expires_at":  expiresAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, helper.Wrapf(helper.ErrUpstreamUnavailable, "gravar override: %v", err)
	}

	return &Override{ChurchID: church.ChurchID, ChurchName: church.ChurchName, ExpiresAt: expiresAt}, nil
}

// ExitChurchView limpa o override. Para não-superadmin é rejeição explícita.
func (s *ScopeService) ExitChurchView(p Profile) error {
	if p.Role != constants.RoleSuperadmin {
		return helper.Wrapf(helper.ErrAuthorization, "role %q não possui visão de igreja", p.Role)
	}
	err := s.DB.Where("church_view_user_id = ?", p.UserID).
		Delete(&tenancyModel.ChurchViewSession{}).Error
	if err != nil {
		return helper.Wrapf(helper.ErrUpstreamUnavailable, "limpar override: %v", err)
	}
	return nil
}

// CurrentOverride restaura o override persistido (se vigente). Overrides
// expirados são descartados na leitura.
func (s *ScopeService) CurrentOverride(userID uuid.UUID) (*Override, error) {
	var row tenancyModel.ChurchViewSession
	err := s.DB.First(&row, "church_view_user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, helper.Wrapf(helper.ErrUpstreamUnavailable, "ler override: %v", err)
	}

	if !s.Now().Before(row.ChurchViewExpiresAt) {
		_ = s.DB.Where("church_view_user_id = ?", userID).Delete(&tenancyModel.ChurchViewSession{}).Error
		return nil, nil
	}

	return &Override{
		ChurchID:   row.ChurchViewChurchID,
		ChurchName: row.ChurchViewChurchName,
		ExpiresAt:  row.ChurchViewExpiresAt,
	}, nil
}

// ClearOnLogout remove o override no logout (transição logout → none).
func (s *ScopeService) ClearOnLogout(userID uuid.UUID) {
	_ = s.DB.Where("church_view_user_id = ?", userID).Delete(&tenancyModel.ChurchViewSession{}).Error
}
