package models

// ServiceItem kartvizitte listelenen bir hizmet kalemidir.
// Order çağıranın verdiği sıralama ipucudur; benzersizlik veya
// yeniden numaralandırma uygulanmaz.
type ServiceItem struct {
	BaseModel
	VCardID     uint    `gorm:"index;not null" json:"vcardId"`
	Title       string  `gorm:"type:varchar(150);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:numeric(12,2)" json:"price"`
	Currency    string  `gorm:"type:varchar(10)" json:"currency"`
	Order       int     `gorm:"column:display_order;default:0" json:"order"`
}
