package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type BookRequest struct {
	TicketCount int `json:"ticket_count" binding:"required,gte=1"`
}
