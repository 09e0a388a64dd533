package models

// Font editörde seçilebilen yazı tiplerinin lookup tablosudur.
// Varsayılan kayıtlar seeder ile yüklenir.
type Font struct {
	BaseModel
	Name   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Family string `gorm:"type:varchar(150);not null" json:"family"` // CSS font-family değeri
	URL    string `gorm:"type:varchar(500)" json:"url"`             // Opsiyonel webfont kaynağı
}

// Seed edilen varsayılan font adları.
const (
	FontNameInter    = "Inter"
	FontNameRoboto   = "Roboto"
	FontNamePlayfair = "Playfair Display"
)
