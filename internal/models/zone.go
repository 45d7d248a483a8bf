package models

import (
	"github.com/google/uuid"
)

// Zone - территориальная зона муниципалитета
type Zone struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// Crew - выездная бригада
type Crew struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name"`
}

// TenantSettings - настройки арендатора, нужные аналитике
type TenantSettings struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	OfficeLatitude  *float64  `json:"office_latitude,omitempty"`
	OfficeLongitude *float64  `json:"office_longitude,omitempty"`
}
