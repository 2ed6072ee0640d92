package models

import (
	"time"

	"gorm.io/gorm"
)

var (
	GenderValues   = []string{"Male", "Female", "Other"}
	CategoryValues = []string{"General", "OBC", "SC", "ST", "EWS", "Other"}
	ReligionValues = []string{
		"Hindu", "Muslim", "Christian", "Sikh", "Buddhist",
		"Jain", "Parsi", "Jewish", "Other",
	}
)

type BeneficiaryRegistration struct {
	gorm.Model
	// Personal details
	FirstName  string    `gorm:"not null" json:"firstName"`
	MiddleName string    `gorm:"default:''" json:"middleName"`
	LastName   string    `gorm:"not null" json:"lastName"`
	MotherName string    `gorm:"not null" json:"motherName"`
	DOB        time.Time `gorm:"not null" json:"dob"`
	Gender     string    `gorm:"not null" json:"gender"` // Male, Female, Other

	// Contact details
	MobileNumber string `gorm:"not null" json:"mobileNumber"` // 10 digits
	Email        string `gorm:"default:''" json:"email"`

	// Address details
	Address string `gorm:"not null" json:"address"`
	City    string `gorm:"not null" json:"city"`
	State   string `gorm:"not null" json:"state"`
	PinCode string `gorm:"not null" json:"pinCode"` // Indian pincode, 6 digits

	// Social and status details
	Caste              string `gorm:"not null" json:"caste"`
	SubCaste           string `gorm:"default:''" json:"subCaste"`
	Category           string `gorm:"not null" json:"category"`
	Religion           string `gorm:"not null" json:"religion"`
	Orphan             bool   `gorm:"default:false" json:"orphan"`
	PhysicallyDisabled bool   `gorm:"default:false" json:"physicallyDisabled"`

	// Linked records
	DocumentID uint `json:"documentDetails"`
	UserID     uint `json:"userId"`
}
