package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// O contexto retornado por WithTransaction carrega a transação para os repositórios.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
