package specification

import "gorm.io/gorm"

// ByComplaint matches a complaint exactly, ignoring case. Used for duplicate
// detection before ingesting a new knowledge entry.
type ByComplaint struct {
	Complaint string
}

func (s ByComplaint) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(complaint) = LOWER(?)", s.Complaint)
}

// BySector restricts entries to one knowledge base sector.
type BySector struct {
	Sector string
}

func (s BySector) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sector = ?", s.Sector)
}

// ByCategory restricts entries to one complaint category.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}
