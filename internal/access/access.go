// Package access централизует проверки прав доступа. Вся авторизация в
// сервисе сводится к функциям этого пакета: никакого разбросанного ветвления
// по is-admin флагу в операциях быть не должно.
package access

import "github.com/frizerio/salon-booking-service/internal/domain"

// Actor идентичность, разрешённая внешним слоем аутентификации:
// ID пользователя и признак администратора
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// CanManageSalon возвращает true, если актор управляет салоном:
// администратор, владеющий этим салоном
func CanManageSalon(actor Actor, salon *domain.Salon) bool {
	return actor.IsAdmin && salon.IsOwnedBy(actor.UserID)
}

// CanViewSalon возвращает true, если актор видит салон: активные салоны
// видны всем, неактивные - только управляющему администратору
func CanViewSalon(actor Actor, salon *domain.Salon) bool {
	if salon.Active {
		return true
	}
	return CanManageSalon(actor, salon)
}

// CanModifyReservation возвращает true, если актор может отменить, изменить
// или удалить резервацию: её владелец либо администратор салона
func CanModifyReservation(actor Actor, reservation *domain.Reservation, salon *domain.Salon) bool {
	if reservation.CustomerID == actor.UserID {
		return true
	}
	return CanManageSalon(actor, salon)
}
