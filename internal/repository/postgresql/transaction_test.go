package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerierUsesContextTransaction(t *testing.T) {
	tx := stubTx{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	q := GetQuerier(ctx, &database.DB{})
	assert.Equal(t, tx, q)
}

func TestGetQuerierFallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}
