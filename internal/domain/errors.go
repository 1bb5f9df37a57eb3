package domain

import "github.com/pkg/errors"

var (
	// ErrStoreUnavailable indica que não foi possível estabelecer conexão com o banco de dados
	ErrStoreUnavailable = errors.New("serviço de banco de dados indisponível")

	// ErrInvalidPeriod indica um seletor de período desconhecido
	ErrInvalidPeriod = errors.New("período inválido")
)
