package models

import (
	"gorm.io/datatypes"
)

// Yayın durumları. Yeni kart aksi belirtilmedikçe DRAFT başlar;
// public çözümleme yalnızca PUBLISHED kayıtları görür.
const (
	PublishStatusDraft     = "DRAFT"
	PublishStatusPublished = "PUBLISHED"
)

// VCard dijital kartvizitin kök kaydıdır (aggregate root).
// Dört çocuk koleksiyonu ile birlikte tek bütün olarak okunur/yazılır.
type VCard struct {
	BaseModel
	OrganizationID uint   `gorm:"index;not null" json:"organizationId"` // Tenant sınırı, oluşturulduktan sonra değişmez
	Slug           string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	TemplateID     string `gorm:"type:varchar(50);not null" json:"templateId"`
	Title          string `gorm:"type:varchar(150);not null" json:"title"`
	Name           string `gorm:"type:varchar(150);not null" json:"name"`

	JobTitle string `gorm:"type:varchar(150)" json:"jobTitle"`
	Company  string `gorm:"type:varchar(150)" json:"company"`
	Bio      string `gorm:"type:text" json:"bio"`
	Avatar   string `gorm:"type:varchar(500)" json:"avatar"`
	Banner   string `gorm:"type:varchar(500)" json:"banner"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Email    string `gorm:"type:varchar(100)" json:"email"`
	Website  string `gorm:"type:varchar(255)" json:"website"`
	Address  string `gorm:"type:text" json:"address"`

	ThemeConfig datatypes.JSON `gorm:"type:jsonb" json:"themeConfig"`
	FontID      *uint          `gorm:"index" json:"fontId"`
	Font        *Font          `gorm:"foreignKey:FontID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"font,omitempty"`

	// Public sayfa için opsiyonel erişim şifresi (bcrypt hash). API yanıtlarına sızmaz.
	AccessPasswordHash string `gorm:"type:varchar(255)" json:"-"`

	PublishStatus string `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"publishStatus"`

	// Çocuk koleksiyonlar. Kök silinince cascade ile silinirler.
	BusinessHours []BusinessHour `gorm:"foreignKey:VCardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"businessHours"`
	Services      []ServiceItem  `gorm:"foreignKey:VCardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`
	SocialLinks   []SocialLink   `gorm:"foreignKey:VCardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"socialLinks"`
	Testimonials  []Testimonial  `gorm:"foreignKey:VCardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"testimonials"`
}

// IsPublished kartın public olarak çözümlenebilir olup olmadığını söyler.
func (v *VCard) IsPublished() bool {
	return v.PublishStatus == PublishStatusPublished
}

// ThemeSettings kolondaki JSON'u çözer. Kolona yazılan veri sınırda
// doğrulandığı için burada hata yutulur, boş ayar döner.
func (v *VCard) ThemeSettings() ThemeConfig {
	cfg, err := ParseThemeConfig(v.ThemeConfig)
	if err != nil {
		return ThemeConfig{}
	}
	return cfg
}

// HasAccessPassword public sayfanın şifre ile korunup korunmadığını söyler.
func (v *VCard) HasAccessPassword() bool {
	return v.AccessPasswordHash != ""
}
