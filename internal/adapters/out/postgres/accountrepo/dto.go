// Package accountrepo persists login accounts with their bcrypt password
// hashes.
package accountrepo

import (
	"booking/internal/core/domain/model/account"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the database representation of a login account.
type AccountDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone        string     `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(16);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	PartnerID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName maps the DTO to the "accounts" table.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	var partnerID *uuid.UUID
	if a.PartnerID() != nil {
		raw := a.PartnerID().Bytes()
		partnerID = &raw
	}

	return AccountDTO{
		ID:           a.ID().Bytes(),
		Phone:        a.Phone(),
		Email:        a.Email(),
		Role:         string(a.Role()),
		PasswordHash: a.PasswordHash(),
		PartnerID:    partnerID,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	return account.RestoreAccount(id, dto.Phone, dto.Email, account.Role(dto.Role), dto.PasswordHash, partnerID)
}
