package ranking

import "errors"

var (
	// Erros de validação
	ErrAppIDRequired = errors.New("app ID is required")
	ErrInvalidPeriod = errors.New("end date must not be before start date")
	ErrPeriodTooLong = errors.New("period must not exceed 366 days")

	// Erros de banco de dados
	ErrFetchHistory = errors.New("error fetching ranking history")
)
