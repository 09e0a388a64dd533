package models

// SocialLink kartvizitteki tek bir sosyal medya bağlantısıdır.
type SocialLink struct {
	BaseModel
	VCardID  uint   `gorm:"index;not null" json:"vcardId"`
	Platform string `gorm:"type:varchar(50);not null" json:"platform"`
	URL      string `gorm:"type:varchar(500);not null" json:"url"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
}
