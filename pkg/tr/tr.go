package tr

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TrOrPool возвращает активную транзакцию из контекста, если операция
// выполняется внутри trm.Manager.Do, иначе — сам пул соединений.
func TrOrPool(ctx context.Context, pool *pgxpool.Pool) trmpgx.Tr {
	return trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, pool)
}
