package submit_contact

import (
	submitContact "github.com/sulfurea/SPA-BookingService/internal/usecase/submit_contact"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// ContactSuccessResponse ответ при успешной отправке
type ContactSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactFailureResponse ответ при сбое доставки с mailto fallback
type ContactFailureResponse struct {
	Error  string `json:"error"`
	Mailto string `json:"mailto"`
}

// ToUseCaseMessage конвертирует HTTP request в сообщение use case
func (r *ContactRequest) ToUseCaseMessage() *submitContact.Message {
	return &submitContact.Message{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Body:    r.Message,
		Context: r.Context,
	}
}
