package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role values for User. "admin" is the clinical role value; staff visibility
// is governed by IsStaff, which is a separate flag.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// User is the phone-based identity every clinical record hangs off.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Phone     string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"phone"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'patient'" json:"role"`
	IsStaff   bool      `gorm:"not null;default:false;index" json:"is_staff"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments    []Appointment    `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	LaboratoryTests []LaboratoryTest `gorm:"foreignKey:PatientID" json:"laboratory_tests,omitempty"`
	PharmacyOrders  []PharmacyOrder  `gorm:"foreignKey:PatientID" json:"pharmacy_orders,omitempty"`
	MedicalRecords  []MedicalRecord  `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// CanAccess reports whether the user may see a record owned by ownerID.
// This is the single authorization predicate for every clinical resource.
func (u *User) CanAccess(ownerID uuid.UUID) bool {
	return u.IsStaff || u.ID == ownerID
}
