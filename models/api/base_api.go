package apimodels

type Response struct {
	Success bool   `json:"success"`         //результат обработки
	Message string `json:"message"`         //сообщение для пользователя
	Error   string `json:"error,omitempty"` //описание ошибки
}

func NewError(message, errText string) Response {
	return Response{
		Success: false,
		Message: message,
		Error:   errText,
	}
}

func NewResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}
