package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/pkg/geo"
)

// ComplaintStatus - статус жизненного цикла обращения
type ComplaintStatus string

const (
	StatusNew        ComplaintStatus = "new"
	StatusAssigned   ComplaintStatus = "assigned"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusRejected   ComplaintStatus = "rejected"
)

// DefaultPriority подставляется, когда у обращения не указан приоритет
const DefaultPriority = 3

// ActiveStatuses - статусы, для которых считается SLA
var ActiveStatuses = []ComplaintStatus{StatusNew, StatusAssigned, StatusInProgress}

// OpenStatuses - статусы, участвующие в кластеризации
var OpenStatuses = []ComplaintStatus{StatusNew, StatusAssigned}

// IsActive сообщает, находится ли обращение в работе
func (s ComplaintStatus) IsActive() bool {
	return s == StatusNew || s == StatusAssigned || s == StatusInProgress
}

// Complaint - обращение гражданина. Ядро аналитики только читает эти записи.
type Complaint struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Priority     *int            `json:"priority,omitempty"`
	Status       ComplaintStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty"`
	ZoneID       *uuid.UUID      `json:"zone_id,omitempty"`
	CrewID       *uuid.UUID      `json:"crew_id,omitempty"`
}

// HasLocation сообщает, заданы ли обе координаты
func (c *Complaint) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Location возвращает координаты обращения. Вызывать только после HasLocation.
func (c *Complaint) Location() geo.Point {
	return geo.Point{Lat: *c.Latitude, Lon: *c.Longitude}
}

// PriorityOrDefault возвращает приоритет или DefaultPriority, если он не задан
func (c *Complaint) PriorityOrDefault() int {
	if c.Priority == nil {
		return DefaultPriority
	}
	return *c.Priority
}

// ComplaintFilter - параметры выборки снимка обращений из хранилища
type ComplaintFilter struct {
	CreatedSince  *time.Time
	ResolvedSince *time.Time
	Statuses      []ComplaintStatus
	CategoryID    *uuid.UUID
}
