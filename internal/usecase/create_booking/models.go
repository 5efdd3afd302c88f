package create_booking

// Request данные формы бронирования
type Request struct {
	Name      string `json:"name" validate:"required,min=2,max=50"`
	Phone     string `json:"phone" validate:"required,len=10,digits"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required"`
	Service   string `json:"service" validate:"required"`
	Duration  string `json:"duration" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	Days      int    `json:"days" validate:"gte=1,lte=2147483647"`
	Notes     string `json:"notes" validate:"max=500"`
}
