package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ApplicationSchoolFees     = "schoolFees"
	ApplicationTravelExpenses = "travelExpenses"
	ApplicationStudyBooks     = "studyBooks"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SchoolFeesRequiredFiles are the document slots a school fees application
// must carry.
var SchoolFeesRequiredFiles = []string{
	"birthCertificate",
	"leavingCertificate",
	"marksheet",
	"admissionProof",
	"incomeProof",
	"bankAccount",
}

type Application struct {
	gorm.Model
	UserID          uint   `gorm:"not null;index" json:"userId"`
	ApplicationType string `gorm:"not null" json:"applicationType"` // schoolFees, travelExpenses, studyBooks
	Status          string `gorm:"default:'pending'" json:"status"` // pending, approved, rejected

	// Uploaded document URLs keyed by form field name
	Documents datatypes.JSONMap `json:"documents"`

	// School fees
	Amount float64 `gorm:"default:0" json:"amount,omitempty"`

	// Travel expenses
	ResidencePlace   string  `gorm:"default:''" json:"residencePlace,omitempty"`
	DestinationPlace string  `gorm:"default:''" json:"destinationPlace,omitempty"`
	Distance         float64 `gorm:"default:0" json:"distance,omitempty"`
	TravelMode       string  `gorm:"default:''" json:"travelMode,omitempty"`
	AidRequired      float64 `gorm:"default:0" json:"aidRequired,omitempty"`

	// Study books
	YearOfStudy   string `gorm:"default:''" json:"yearOfStudy,omitempty"`
	Field         string `gorm:"default:''" json:"field,omitempty"`
	BooksRequired string `gorm:"default:''" json:"booksRequired,omitempty"`
	Standard      string `gorm:"default:''" json:"standard,omitempty"`
	Stream        string `gorm:"default:''" json:"stream,omitempty"`
	Medium        string `gorm:"default:''" json:"medium,omitempty"`
}
