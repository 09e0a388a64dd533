package models

// Testimonial kartvizitteki bir müşteri yorumudur.
// Rating bu katmanda [1,5] aralığına sıkıştırılmaz; render katmanı
// her yorum için tam 5 yıldız glifi basar.
type Testimonial struct {
	BaseModel
	VCardID uint   `gorm:"index;not null" json:"vcardId"`
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Avatar  string `gorm:"type:varchar(500)" json:"avatar"`
	Rating  int    `gorm:"default:5" json:"rating"`
	Text    string `gorm:"type:text" json:"text"`
	Order   int    `gorm:"column:display_order;default:0" json:"order"`
}
