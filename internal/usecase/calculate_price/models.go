package calculate_price

// Request запрос предварительного расчета
type Request struct {
	Service  string `json:"service" validate:"required"`
	Duration string `json:"duration" validate:"required"`
	Days     int    `json:"days" validate:"gte=1,lte=2147483647"`
}

// Breakdown составляющие цены
type Breakdown struct {
	ServiceTitle    string `json:"serviceTitle"`
	BasePrice       int64  `json:"basePrice"`
	Multiplier      string `json:"multiplier"`
	Subtotal        string `json:"subtotal"`
	DiscountFactor  string `json:"discountFactor"`
	DiscountPercent int64  `json:"discountPercent"`
}

// Response результат расчета
type Response struct {
	Service   string    `json:"service"`
	Duration  string    `json:"duration"`
	Days      int       `json:"days"`
	Price     int64     `json:"price"`
	Breakdown Breakdown `json:"breakdown"`
}
