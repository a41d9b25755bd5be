package handler

// --- Request types ---

type clientRequest struct {
	FirstName        string   `json:"first_name"         validate:"required"`
	LastName         string   `json:"last_name"          validate:"required"`
	Patronymic       string   `json:"patronymic"`
	Login            string   `json:"login"              validate:"required"`
	Password         string   `json:"password"           validate:"required"`
	Email            string   `json:"email"              validate:"required,email"`
	Roles            []string `json:"roles"              validate:"omitempty,dive,oneof=USER MANAGER ADMIN"`
	ConfirmationCode string   `json:"confirmation_code"`
	AccountNonLocked *bool    `json:"account_non_locked"`
}

type categoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

type itemRequest struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"   validate:"required"`
	Count           int             `json:"count"  validate:"gte=0"`
	Weight          float64         `json:"weight" validate:"gte=0"`
	Price           float64         `json:"price"  validate:"gte=0"`
	Description     string          `json:"description"`
	Characteristics string          `json:"characteristics"`
	Image           string          `json:"image"`
	Code            string          `json:"code"`
	Category        categoryRequest `json:"category" validate:"required"`
}

// clientItemRequest is one basket or order line. The id is optional: a known
// id targets an existing line, a zero id creates a new one.
type clientItemRequest struct {
	ID       int64       `json:"id"`
	Item     itemRequest `json:"item"     validate:"required"`
	Quantity int         `json:"quantity" validate:"required,gt=0"`
}

type contactsRequest struct {
	ZipCode     string `json:"zip_code"     validate:"required"`
	Country     string `json:"country"      validate:"required"`
	City        string `json:"city"         validate:"required"`
	Street      string `json:"street"       validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type orderRequest struct {
	ClientItems   []clientItemRequest `json:"client_items"   validate:"omitempty,dive"`
	Contacts      contactsRequest     `json:"contacts"       validate:"required"`
	PaymentMethod string              `json:"payment_method" validate:"required"`
	TrackNumber   string              `json:"track_number"`
	OrderStatus   string              `json:"order_status"   validate:"omitempty,oneof=NEW PROCESSING COMPLETED"`
}

type loginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listResponse struct {
	Data       any                `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func newListResponse(data any, total int64, page, size int) listResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return listResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      total,
			Page:       page,
			Limit:      size,
			TotalPages: totalPages,
		},
	}
}
