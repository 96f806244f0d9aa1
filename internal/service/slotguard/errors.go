package slotguard

import "errors"

var (
	// ErrSlotTaken возвращается, когда время занято другой активной записью
	ErrSlotTaken = errors.New("slotguard: slot is taken")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("slotguard: store unavailable")

	// ErrInvalidCandidate возвращается для некорректного времени или длительности новой записи
	ErrInvalidCandidate = errors.New("slotguard: invalid candidate")
)
