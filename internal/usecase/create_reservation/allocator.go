package create_reservation

import (
	"sort"

	"github.com/frizerio/salon-booking-service/internal/domain"
)

// allocateWorker выбирает свободного работника для интервала: активные
// работники по возрастанию ID, минус те, у кого окно на этот интервал уже
// занято, первый оставшийся. Выбор детерминирован: при одинаковом состоянии
// всегда выбирается один и тот же работник.
// Возвращает nil, если свободных работников нет.
func allocateWorker(workers []*domain.Worker, occupiedWorkerIDs []int64) *domain.Worker {
	occupied := make(map[int64]struct{}, len(occupiedWorkerIDs))
	for _, id := range occupiedWorkerIDs {
		occupied[id] = struct{}{}
	}

	// Репозиторий отдаёт работников по возрастанию ID, но порядок - часть
	// контракта аллокатора, поэтому не полагаемся на это молча
	candidates := make([]*domain.Worker, len(workers))
	copy(candidates, workers)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	for _, w := range candidates {
		if _, busy := occupied[w.ID]; !busy {
			return w
		}
	}

	return nil
}
