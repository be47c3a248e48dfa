// Package directoryrepo persists customers, locations and agents with GORM.
package directoryrepo

import (
	"ledger/internal/core/domain/model/directory"
	"ledger/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	CustomerID int64  `gorm:"column:customer_id;primaryKey;autoIncrement:false"`
	Name       string `gorm:"column:name"`
	Contact    string `gorm:"column:contact"`
}

func (CustomerDTO) TableName() string {
	return "customer"
}

type LocationDTO struct {
	LocationID       int64  `gorm:"column:location_id;primaryKey;autoIncrement:false"`
	Name             string `gorm:"column:name"`
	ParentLocationID *int64 `gorm:"column:parent_location_id"`
	PostalCode       string `gorm:"column:postal_code"`
}

func (LocationDTO) TableName() string {
	return "location"
}

type AgentDTO struct {
	AgentID  int64  `gorm:"column:agent_id;primaryKey;autoIncrement:false"`
	Name     string `gorm:"column:name"`
	Contacts string `gorm:"column:contacts"`
}

func (AgentDTO) TableName() string {
	return "agent"
}

func customerFromDomain(c *directory.Customer) CustomerDTO {
	return CustomerDTO{CustomerID: c.ID().Int64(), Name: c.Name(), Contact: c.Contact()}
}

func locationFromDomain(l *directory.Location) LocationDTO {
	return LocationDTO{
		LocationID:       l.ID().Int64(),
		Name:             l.Name(),
		ParentLocationID: kernel.Int64Ptr(l.ParentID()),
		PostalCode:       l.PostalCode(),
	}
}

func agentFromDomain(a *directory.Agent) AgentDTO {
	return AgentDTO{AgentID: a.ID().Int64(), Name: a.Name(), Contacts: a.Contacts()}
}
