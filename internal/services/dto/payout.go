package dto

// PayoutMethodDTO - способ вывода средств
type PayoutMethodDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
}

// PayoutRequestDTO - заявка на вывод
type PayoutRequestDTO struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	MethodID string  `json:"method_id" binding:"required"`
}

// PayoutRequestResponse - подтверждение заявки
type PayoutRequestResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}
