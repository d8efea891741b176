package models

// Caller - личность вызывающего, подтверждённая JWT токеном
type Caller struct {
	ID   string
	Role Role
}

// User - модель пользователя из хранилища
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Age          int
	Email        string
	Salary       int
	IsBlocked    bool
	Username     string
	PasswordHash string
	AccountantID *int64
}

// Accountant - модель бухгалтера из хранилища
type Accountant struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
}

// RegisterRequest - модель регистрации пользователя, приходит извне
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,trimmed,min=2"`
	LastName  string `json:"lastName" validate:"required,trimmed,min=2"`
	Age       int    `json:"age" validate:"gte=18"`
	Email     string `json:"email" validate:"email"`
	Salary    *int   `json:"salary" validate:"omitempty,gte=0"`
	Username  string `json:"username" validate:"min=6,has_digit"`
	Password  string `json:"password" validate:"has_upper,has_lower,has_digit,has_symbol,min=8"`
}

// AccountantRegisterRequest - модель регистрации бухгалтера
type AccountantRegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,trimmed,min=2"`
	LastName  string `json:"lastName" validate:"required,trimmed,min=2"`
	Username  string `json:"userName" validate:"min=6,has_digit"`
	Password  string `json:"password" validate:"has_upper,has_lower,has_digit,has_symbol,min=8"`
}

// LoginRequest - модель аутентификации
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=6,trimmed"`
	Password string `json:"password" validate:"required,min=8,trimmed"`
}

// LoginResponse - ответ на успешную аутентификацию
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse - профиль пользователя для выдачи
type UserResponse struct {
	UserID    int64   `json:"userId"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Username  *string `json:"username"`
	Age       int     `json:"age"`
	Salary    int     `json:"salary"`
}

// AccountantResponse - профиль бухгалтера для выдачи
type AccountantResponse struct {
	AccountantID int64  `json:"accountantId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Username     string `json:"userName"`
}

// NewUserResponse - преобразует пользователя в DTO, username пустой если нет учётных данных
func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Salary:    u.Salary,
	}
	if u.Username != "" {
		username := u.Username
		resp.Username = &username
	}
	return resp
}
