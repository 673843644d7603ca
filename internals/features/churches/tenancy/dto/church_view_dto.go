// internals/features/churches/tenancy/dto/church_view_dto.go
package dto

type EnterChurchViewRequest struct {
	ChurchID string `json:"church_id" validate:"required,uuid"`
}
