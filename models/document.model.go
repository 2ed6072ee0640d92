package models

import (
	"gorm.io/gorm"
)

// Document slot field names as they appear in the multipart form.
var (
	MandatoryDocumentSlots = []string{"aadharCard", "passportSizePhoto", "houseImage"}

	OptionalDocumentSlots = []string{
		"panCard",
		"rationCard",
		"birthCertificate",
		"leavingCertificate",
		"casteCertificate",
		"casteValidityCertificate",
		"incomeCertificate",
		"domicileCertificate",
	}
)

type BeneficiaryDocument struct {
	gorm.Model
	// Compulsory documents
	AadharCard        string `gorm:"not null" json:"aadharCard"`
	PassportSizePhoto string `gorm:"not null" json:"passportSizePhoto"`
	HouseImage        string `gorm:"not null" json:"houseImage"`
	// Optional documents
	PanCard                  string `gorm:"default:''" json:"panCard"`
	RationCard               string `gorm:"default:''" json:"rationCard"`
	BirthCertificate         string `gorm:"default:''" json:"birthCertificate"`
	LeavingCertificate       string `gorm:"default:''" json:"leavingCertificate"`
	CasteCertificate         string `gorm:"default:''" json:"casteCertificate"`
	CasteValidityCertificate string `gorm:"default:''" json:"casteValidityCertificate"`
	IncomeCertificate        string `gorm:"default:''" json:"incomeCertificate"`
	DomicileCertificate      string `gorm:"default:''" json:"domicileCertificate"`
}

// SetSlot writes an uploaded file URL into the column for the given form
// field name. Returns false for unknown slot names.
func (d *BeneficiaryDocument) SetSlot(name, url string) bool {
	switch name {
	case "aadharCard":
		d.AadharCard = url
	case "passportSizePhoto":
		d.PassportSizePhoto = url
	case "houseImage":
		d.HouseImage = url
	case "panCard":
		d.PanCard = url
	case "rationCard":
		d.RationCard = url
	case "birthCertificate":
		d.BirthCertificate = url
	case "leavingCertificate":
		d.LeavingCertificate = url
	case "casteCertificate":
		d.CasteCertificate = url
	case "casteValidityCertificate":
		d.CasteValidityCertificate = url
	case "incomeCertificate":
		d.IncomeCertificate = url
	case "domicileCertificate":
		d.DomicileCertificate = url
	default:
		return false
	}
	return true
}
