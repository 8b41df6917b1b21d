package stockstatus

import (
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// StatusCounts número de registros por estado.
type StatusCounts struct {
	Normal   int
	Low      int
	Critical int
	Expired  int
}

// Total suma de todos los estados.
func (c StatusCounts) Total() int {
	return c.Normal + c.Low + c.Critical + c.Expired
}

// CountByStatus clasifica cada registro en now y cuenta por estado.
func CountByStatus(records []entity.InventoryRecord, now time.Time) StatusCounts {
	var c StatusCounts
	for _, rec := range records {
		switch Classify(rec, now) {
		case StatusNormal:
			c.Normal++
		case StatusLow:
			c.Low++
		case StatusCritical:
			c.Critical++
		case StatusExpired:
			c.Expired++
		}
	}
	return c
}
