package services

import (
	"errors"
	"strings"
)

// Messages shown to end users
const (
	MsgGeneric          = "Bir hata oluştu, lütfen tekrar deneyin."
	MsgUnauthorized     = "Oturumunuzun süresi doldu, lütfen tekrar giriş yapın."
	MsgForbidden        = "Bu işlem için yetkiniz yok."
	MsgNotFound         = "Kayıt bulunamadı."
	MsgCVNotFound       = "CV bulunamadı."
	MsgOwnCV            = "Kendi CV'niz için bu işlemi yapamazsınız."
	MsgNotEmployer      = "Bu işlem yalnızca işveren hesapları içindir."
	MsgCompanyRequired  = "Önce şirket profilinizi oluşturmalısınız."
	MsgDuplicateRequest = "Bu aday için zaten bekleyen bir talebiniz var."
	MsgAlreadyApproved  = "Bu adayın iletişim bilgilerine zaten erişiminiz var."
	MsgRequestClosed    = "Bu talep artık yanıtlanamaz."
	MsgValidation       = "Lütfen form alanlarını kontrol edin."
	MsgNetwork          = "Bağlantı hatası, lütfen tekrar deneyin."
	MsgRateLimited      = "Çok fazla istek gönderdiniz, lütfen biraz bekleyin."
)

var sentinelMessages = []struct {
	err error
	msg string
}{
	{ErrUnauthorized, MsgUnauthorized},
	{ErrNotEmployer, MsgNotEmployer},
	{ErrForbidden, MsgForbidden},
	{ErrCVNotFound, MsgCVNotFound},
	{ErrOwnCV, MsgOwnCV},
	{ErrCompanyRequired, MsgCompanyRequired},
	{ErrDuplicateRequest, MsgDuplicateRequest},
	{ErrAlreadyApproved, MsgAlreadyApproved},
	{ErrRequestNotPending, MsgRequestClosed},
	{ErrProfileNotFound, MsgNotFound},
	{ErrCompanyNotFound, MsgNotFound},
	{ErrRequestNotFound, MsgNotFound},
	{ErrNotificationNotFound, MsgNotFound},
}

// Checked in order against the lowercased error text
var substringMessages = []struct {
	needles []string
	msg     string
}{
	{[]string{"duplicate", "unique constraint", "already exists"}, MsgDuplicateRequest},
	{[]string{"jwt", "token", "unauthorized"}, MsgUnauthorized},
	{[]string{"permission", "forbidden", "not allowed"}, MsgForbidden},
	{[]string{"not found", "no rows"}, MsgNotFound},
	{[]string{"validation", "is required", "must be"}, MsgValidation},
	{[]string{"rate limit", "too many"}, MsgRateLimited},
	{[]string{"timeout", "deadline exceeded", "connection", "network"}, MsgNetwork},
}

// UserMessage maps an error to the short Turkish sentence shown in a toast
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range sentinelMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	text := strings.ToLower(err.Error())
	for _, m := range substringMessages {
		for _, needle := range m.needles {
			if strings.Contains(text, needle) {
				return m.msg
			}
		}
	}

	return MsgGeneric
}
