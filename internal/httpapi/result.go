package httpapi

// Result matches the backend webhook envelope so the frontend can treat
// both origins the same:
// - success: bool
// - data: payload on success
// - message / error: human-readable detail
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func OkMsg[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func Fail(message string) Result[any] {
	return Result[any]{Success: false, Error: message}
}
